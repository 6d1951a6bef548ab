package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skip2/go-qrcode"
)

// handleQRCode godoc
// @Summary      PNG QR code of the wallet address
// @Tags         wallets
// @Produce      png
// @Param        id   path      string  true  "wallet id"
// @Success      200  {file}    binary
// @Failure      404  {object}  map[string]any
// @Router       /api/wallets/{id}/qr [get]
func (s *Server) handleQRCode(w http.ResponseWriter, r *http.Request) {
	wallet, err := s.wallets.Find(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.renderError(w, err)
		return
	}

	png, err := s.qrCode(wallet.ID, wallet.Address)
	if err != nil {
		s.logger.Error("qrcode.Encode", "id", wallet.ID, "err", err)
		s.renderError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// wallet records are immutable, so a cached image never goes stale.
func (s *Server) qrCode(id, address string) ([]byte, error) {
	s.qrMux.Lock()
	defer s.qrMux.Unlock()

	if png, ok := s.qrCodes.Get(id); ok {
		return png, nil
	}

	png, err := qrcode.Encode(address, qrcode.Medium, s.qrSize)
	if err != nil {
		return nil, err
	}

	s.qrCodes.Put(id, png)
	return png, nil
}
