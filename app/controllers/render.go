package controllers

import (
	"encoding/json"
	"net/http"

	"miniblog/app/apperr"
	"miniblog/app/dto"
	"miniblog/global"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a tagged error onto its HTTP status. Store failure detail
// stays out of responses unless the environment is development.
func writeError(w http.ResponseWriter, err error) {
	status := apperr.HTTPStatus(err)
	msg := err.Error()
	if apperr.KindOf(err) == apperr.KindStore {
		global.Logger.Error().Err(err).Msg("store error")
		if global.Config == nil || global.Config.IsProd() {
			msg = "internal server error"
		}
	}
	writeJSON(w, status, dto.ErrorResponse{Message: msg})
}
