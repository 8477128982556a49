package scanlock

import (
	"context"
	"sync/atomic"
)

// Lock serializa a varredura de lembretes. TryLock nunca bloqueia: ou a
// chamada vira dona da varredura, ou já existe uma em andamento e a chamada
// deve ser descartada (nunca enfileirada).
type Lock interface {
	TryLock(ctx context.Context) (bool, error)
	Unlock(ctx context.Context) error
}

// ===============================
// Lock local (processo único)
// ===============================

// LocalLock guarda o estado ocioso/executando num CAS em memória. Suficiente
// quando só um processo dispara varreduras; com múltiplas instâncias use o
// RedisLock.
type LocalLock struct {
	running int32
}

func NewLocalLock() *LocalLock {
	return &LocalLock{}
}

func (l *LocalLock) TryLock(_ context.Context) (bool, error) {
	return atomic.CompareAndSwapInt32(&l.running, 0, 1), nil
}

func (l *LocalLock) Unlock(_ context.Context) error {
	atomic.StoreInt32(&l.running, 0)
	return nil
}
