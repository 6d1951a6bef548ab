package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pandodao/watch-wallet/core"
	"github.com/twitchtv/twirp"
)

func renderJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) renderError(w http.ResponseWriter, err error) {
	var (
		ve *core.ValidationError
		pe *core.ProviderError
	)

	var twerr twirp.Error
	switch {
	case errors.As(err, &ve):
		twerr = twirp.InvalidArgument.Error(ve.Error())
		if ve.Field != "" {
			twerr = twerr.WithMeta("argument", ve.Field)
		}
	case errors.Is(err, core.ErrWalletNotFound):
		twerr = twirp.NotFoundError("wallet not found")
	case errors.As(err, &pe):
		twerr = twirp.Unavailable.Error(pe.Error()).WithMeta("provider", pe.Provider)
	default:
		s.logger.Error("unhandled error", "err", err)
		twerr = twirp.InternalError("internal error")
	}

	if err := twirp.WriteError(w, twerr); err != nil {
		s.logger.Debug("twirp.WriteError", "err", err)
	}
}
