package api

import (
	"github.com/solotto/draw-engine/modules/lottery/api/httphandler"
	"github.com/solotto/draw-engine/modules/lottery/usecase"
)

func NewHTTPHandler(usecase *usecase.Usecase) *httphandler.HttpHandler {
	return httphandler.New(usecase)
}
