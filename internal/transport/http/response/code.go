package response

import "net/http"

// StatusMsg holds the default message per status, used when no specific one is given.
var StatusMsg = map[int]string{
	http.StatusBadRequest:            "Requisição inválida",
	http.StatusUnauthorized:          "Não autenticado",
	http.StatusForbidden:             "Não autorizado",
	http.StatusNotFound:              "Não encontrado",
	http.StatusRequestEntityTooLarge: "Corpo da requisição muito grande",
	http.StatusTooManyRequests:       "Muitas requisições, tente novamente em instantes",
	http.StatusInternalServerError:   "Erro no servidor",
	http.StatusServiceUnavailable:    "Servidor ocupado",
	http.StatusGatewayTimeout:        "Tempo de resposta esgotado",
}
