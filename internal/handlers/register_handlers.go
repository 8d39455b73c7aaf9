package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/scrapdesk/scrap_ledger_app/internal/core/domain"
	portssvc "github.com/scrapdesk/scrap_ledger_app/internal/core/ports/services"
)

// RegisterHandlers wires all ledger routes onto the given router group and
// registers custom binding validations.
func RegisterHandlers(rg *gin.RouterGroup, inventorySvc portssvc.InventorySvcFacade, cashFlowSvc portssvc.CashFlowSvcFacade) {
	registerCustomValidations()
	registerInventoryRoutes(rg, inventorySvc)
	registerCashFlowRoutes(rg, cashFlowSvc)
}

// registerCustomValidations adds the paymentmethod rule to gin's binding
// validator engine.
func registerCustomValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("paymentmethod", func(fl validator.FieldLevel) bool {
		switch domain.PaymentMethod(fl.Field().String()) {
		case domain.PaymentCash, domain.PaymentMobile, domain.PaymentBank:
			return true
		}
		return false
	})
}
