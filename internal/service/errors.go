package service

import "errors"

type Kind int

const (
	KindValidation Kind = iota + 1
	KindRule
	KindUnauthenticated
	KindForbidden
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindRule:
		return "rule"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	}
	return "unexpected"
}

// Error is a terminal rejection with a message fit for the end user.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func Validation(msg string) error { return &Error{Kind: KindValidation, Msg: msg} }

// KindOf returns the kind of the first *Error in err's chain, or 0 for anything
// unexpected.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

var (
	ErrUnauthenticated    = &Error{KindUnauthenticated, "Não autenticado"}
	ErrInvalidCredentials = &Error{KindUnauthenticated, "E-mail ou senha inválidos"}
	ErrForbidden          = &Error{KindForbidden, "Não autorizado"}
	ErrAdminOnly          = &Error{KindForbidden, "Acesso restrito a administradores"}

	ErrUserNotFound         = &Error{KindNotFound, "Usuário não encontrado"}
	ErrVacationNotFound     = &Error{KindNotFound, "Período de férias não encontrado"}
	ErrCheckinNotFound      = &Error{KindNotFound, "Check-in não encontrado"}
	ErrTripNotFound         = &Error{KindNotFound, "Viagem não encontrada"}
	ErrContractNotFound     = &Error{KindNotFound, "Contrato não encontrado"}
	ErrLocationNotFound     = &Error{KindNotFound, "Local não encontrado"}
	ErrDepartureTimeMissing = &Error{KindNotFound, "Horário não encontrado"}

	ErrEmailTaken          = &Error{KindRule, "E-mail já cadastrado"}
	ErrVacationConflict    = &Error{KindRule, "Você está de férias nesta data"}
	ErrDuplicateCheckin    = &Error{KindRule, "Você já realizou check-in para esta data e sentido"}
	ErrTripUsed            = &Error{KindRule, "Viagem já utilizada"}
	ErrTripDateMismatch    = &Error{KindRule, "Data do check-in não corresponde à data da viagem"}
	ErrTripDirMismatch     = &Error{KindRule, "Sentido do check-in não corresponde ao sentido da viagem"}
	ErrTripReturnMismatch  = &Error{KindRule, "Horário de retorno não corresponde ao horário da viagem"}
	ErrTripUsedUndeletable = &Error{KindRule, "Viagem já utilizada não pode ser excluída"}
	ErrNotSingleRider      = &Error{KindRule, "Viagens avulsas só podem ser emitidas para usuários avulsos"}
	ErrNotSubscriber       = &Error{KindRule, "Apenas usuários mensalistas podem ter contrato"}
	ErrContractExists      = &Error{KindRule, "Usuário já possui contrato"}
	ErrContractBlocksRole  = &Error{KindRule, "Usuário possui contrato; remova-o antes de alterar o tipo"}
	ErrUserInactive        = &Error{KindRule, "Usuário inativo"}
	ErrAdminDeactivation   = &Error{KindRule, "Administradores não podem ser desativados"}
	ErrLocationNameTaken   = &Error{KindRule, "Já existe um local com este nome"}
	ErrDepartureTimeTaken  = &Error{KindRule, "Já existe um horário com este rótulo"}

	ErrInvalidRange       = &Error{KindValidation, "Data final deve ser após a data inicial"}
	ErrInvalidDirection   = &Error{KindValidation, "Sentido inválido: use outbound ou return"}
	ErrReturnTimeRequired = &Error{KindValidation, "Horário de retorno é obrigatório para o sentido return"}
	ErrInvalidRole        = &Error{KindValidation, "Tipo de usuário inválido"}
	ErrInvalidLocation    = &Error{KindValidation, "Tipo de local inválido: use departure ou arrival"}
	ErrDateRequired       = &Error{KindValidation, "Data é obrigatória"}
)
