package capacity

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"certdesk/internal/application/capacity/usecases"
	"certdesk/internal/shared/logger"
	"certdesk/internal/shared/utils"
)

// SlotHandler exposes the regional slot ledger: the current count for the
// board header, and the certifier-only manual corrections.
type SlotHandler struct {
	getSlotCountUC   usecases.GetSlotCountExecutor
	incrementSlotsUC usecases.IncrementSlotsExecutor
	decrementSlotsUC usecases.DecrementSlotsExecutor
	logger           logger.Interface
}

func NewSlotHandler(
	getSlotCountUC usecases.GetSlotCountExecutor,
	incrementSlotsUC usecases.IncrementSlotsExecutor,
	decrementSlotsUC usecases.DecrementSlotsExecutor,
	logger logger.Interface,
) *SlotHandler {
	return &SlotHandler{
		getSlotCountUC:   getSlotCountUC,
		incrementSlotsUC: incrementSlotsUC,
		decrementSlotsUC: decrementSlotsUC,
		logger:           logger,
	}
}

// GetSlotCount handles GET /slots/:region
func (h *SlotHandler) GetSlotCount(c *gin.Context) {
	region, err := utils.ParseIntParam(c, "region", "region")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getSlotCountUC.Execute(c.Request.Context(), usecases.GetSlotCountQuery{Region: region})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// IncrementSlots handles POST /slots/:region/increment
func (h *SlotHandler) IncrementSlots(c *gin.Context) {
	region, err := utils.ParseIntParam(c, "region", "region")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.incrementSlotsUC.Execute(c.Request.Context(), usecases.IncrementSlotsCommand{Region: region})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Slot count incremented", result)
}

// DecrementSlots handles POST /slots/:region/decrement
func (h *SlotHandler) DecrementSlots(c *gin.Context) {
	region, err := utils.ParseIntParam(c, "region", "region")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.decrementSlotsUC.Execute(c.Request.Context(), usecases.DecrementSlotsCommand{Region: region})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Slot count decremented", result)
}
