package httperr

import "errors"

// ===============================
// Taxonomia de erros do núcleo
// ===============================

type Kind string

const (
	KindValidation  Kind = "validation"
	KindNotFound    Kind = "not_found"
	KindSlotTaken   Kind = "slot_taken"
	KindNotEligible Kind = "not_eligible"
	KindStorage     Kind = "storage"
	KindNotifier    Kind = "notifier"
)

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
	cause   error
}

func (e BusinessError) Error() string {
	return e.Code
}

func (e BusinessError) Unwrap() error {
	return e.cause
}

// --------- Construtores ---------

func ErrValidation(code, message string) error {
	return BusinessError{Kind: KindValidation, Code: code, Message: message}
}

func ErrNotFound(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func ErrSlotTaken() error {
	return BusinessError{
		Kind:    KindSlotTaken,
		Code:    "slot_taken",
		Message: "Horário não está mais disponível.",
	}
}

func ErrNotEligible(reason, message string) error {
	return BusinessError{Kind: KindNotEligible, Code: reason, Message: message}
}

// ErrStorage preserva o erro do driver para o chamador poder decidir retry.
func ErrStorage(cause error) error {
	return BusinessError{
		Kind:    KindStorage,
		Code:    "storage_error",
		Message: "Erro temporário de armazenamento. Tente novamente.",
		cause:   cause,
	}
}

func ErrNotifier(cause error) error {
	return BusinessError{
		Kind:    KindNotifier,
		Code:    "notifier_error",
		Message: "Falha ao enviar notificação.",
		cause:   cause,
	}
}

// --------- Inspeção ---------

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func KindOf(err error) (Kind, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind, true
	}
	return "", false
}

func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
