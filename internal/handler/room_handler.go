package handler

import (
	"net/http"

	"meetgate/internal/pkg/errs"
	"meetgate/internal/pkg/randx"
	"meetgate/internal/pkg/resp"
)

// HandleSuggestRoom returns a fresh random room name for a teacher opening a class.
// Nothing is reserved; rooms exist only inside the conferencing service.
func HandleSuggestRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		room, err := randx.RoomName()
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"room": room,
		})
	}
}
