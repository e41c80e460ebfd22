package stake

import (
	"errors"
	"net/http"
)

// Mensagens fixas devolvidas ao cliente
const (
	MsgAuthFailed    = "Authentication failed"
	MsgInternalError = "Internal server error"
	malformedPrefix  = "Invalid request: "
)

var (
	// ErrAuthenticationFailed indica sessão inexistente ou inválida (401)
	ErrAuthenticationFailed = errors.New("invalid session")
	// ErrSessionNotFound é o "não encontrado" da resolução de sessão
	ErrSessionNotFound = errors.New("session not found")
)

// MalformedRequestError indica dado do cliente fora do formato esperado (400)
type MalformedRequestError struct {
	Detail string
}

func (e *MalformedRequestError) Error() string { return e.Detail }

// Malformed cria um MalformedRequestError com o detalhe visível ao cliente
func Malformed(detail string) error {
	return &MalformedRequestError{Detail: detail}
}

// Classify mapeia um erro para status HTTP e mensagem de resposta.
// Qualquer erro fora das duas classes conhecidas vira 500 com mensagem genérica.
func Classify(err error) (int, string) {
	var mr *MalformedRequestError
	switch {
	case err == nil:
		return http.StatusOK, ""
	case errors.As(err, &mr):
		return http.StatusBadRequest, malformedPrefix + mr.Detail
	case errors.Is(err, ErrAuthenticationFailed):
		return http.StatusUnauthorized, MsgAuthFailed
	default:
		return http.StatusInternalServerError, MsgInternalError
	}
}
