package http

import (
	"net/http"

	"github.com/campushub/forum-server/internal/utils"
	"github.com/campushub/forum-server/models"
)

// ok writes the uniform success envelope with the given payload.
func ok(w http.ResponseWriter, data any) {
	utils.WriteJSON(w, models.Envelope{Success: true, Data: data}, http.StatusOK)
}

// okMessage writes a success envelope carrying only a human-readable note.
func okMessage(w http.ResponseWriter, message string) {
	utils.WriteJSON(w, models.Envelope{Success: true, Message: message}, http.StatusOK)
}

// fail writes a failure envelope with the given HTTP status. The message is
// the client-facing explanation; internal error details stay in the logs.
func fail(w http.ResponseWriter, statusCode int, message string) {
	utils.WriteJSON(w, models.Envelope{Success: false, Message: message}, statusCode)
}

// notSignedIn is the success-shaped "no session" reply: requests that merely
// lack a session are not protocol errors, so the envelope stays successful
// and the payload marks itself empty.
func notSignedIn(w http.ResponseWriter) {
	utils.WriteJSON(w, models.Envelope{
		Success: true,
		Message: "Not signed in.",
		Data:    models.NotSignedIn{Empty: true},
	}, http.StatusOK)
}
