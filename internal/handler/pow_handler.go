package handler

import (
	"errors"
	"net/http"

	"meetgate/internal/pkg/errs"
	"meetgate/internal/pkg/logx"
	"meetgate/internal/pkg/pow"
	"meetgate/internal/pkg/req"
	"meetgate/internal/pkg/resp"
)

// HandlePowChallenge hands out a fresh nonce and the current difficulty.
func HandlePowChallenge(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]any{
			"nonce":      deps.PoW.GenerateNonce(),
			"difficulty": deps.PoW.Difficulty(),
			"enabled":    deps.PoW.Enabled(),
		})
	}
}

type PowVerifyInput struct {
	Nonce   string `json:"nonce" validate:"required,uuid"`
	Counter string `json:"counter" validate:"required,max=32"`
}

// HandlePowVerify exchanges a solved challenge for a single-use proof token.
func HandlePowVerify(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input PowVerifyInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		token, err := deps.PoW.ValidateProof(input.Nonce, input.Counter)
		if err != nil {
			if !errors.Is(err, pow.ErrProofInsufficient) {
				logx.Warn("PoW proof rejected", "error", err)
			}
			resp.RespondError(w, r, errs.NewError(errs.ErrPowChallengeInvalid))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"token":     token,
			"header":    pow.TokenHeaderKey,
			"expiresIn": int(pow.ProofTokenDuration.Seconds()),
		})
	}
}
