package utils

import (
	"net/http"

	"github.com/abdurrahmanmahmud5981/SoleAmhere/globals"
)

func GetEmailFromRequest(r *http.Request) string {
	email, ok := r.Context().Value(globals.EmailKey).(string)
	if !ok {
		return ""
	}
	return email
}
