package handlers

import (
	"net/http"

	httperrors "github.com/smediamanagement84-star/ModelApp/internal/transport/http/errors"
)

func Health(w http.ResponseWriter, _ *http.Request) {
	httperrors.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
