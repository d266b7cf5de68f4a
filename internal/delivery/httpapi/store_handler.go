package httpapi

import (
	"net/http"

	"github.com/dalligo/delivery-service/internal/usecase"
	"github.com/gin-gonic/gin"
)

type StoreHandler struct {
	storeUsecase usecase.StoreUsecase
}

func NewStoreHandler(uc usecase.StoreUsecase) *StoreHandler {
	return &StoreHandler{storeUsecase: uc}
}

func (h *StoreHandler) GetStore(c *gin.Context) {
	store, err := h.storeUsecase.GetStoreByID(c.Param("storeId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, store)
}

func (h *StoreHandler) SearchStores(c *gin.Context) {
	page, limit := parsePage(c)
	stores, err := h.storeUsecase.SearchStores(c.Query("keyword"), c.Query("category"), page, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stores)
}
