package middleware

import "context"

// userCPFKey is the key used to store the authenticated user's CPF in the
// request context.
const userCPFKey = contextKey("userCPF")

// GetUserCPFFromCtx retrieves the authenticated user's CPF from the context.
// It returns the CPF and a boolean indicating whether one was set.
func GetUserCPFFromCtx(ctx context.Context) (string, bool) {
	cpf, ok := ctx.Value(userCPFKey).(string)
	if !ok || cpf == "" {
		return "", false
	}
	return cpf, true
}
