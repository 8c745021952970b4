package wire

import (
	"fmt"
	"net/http"

	"movees-db/internal/adaptor"
	"movees-db/web"

	"github.com/go-chi/chi/v5"
)

func wirePage(r chi.Router, pageHandler *adaptor.PageHandler) error {
	static, err := web.Static()
	if err != nil {
		return fmt.Errorf("load static assets: %w", err)
	}

	r.Get("/", pageHandler.Index)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(static)))
	return nil
}
