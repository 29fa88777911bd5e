package sequence_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appsequence "github.com/jhoicas/Alquiler-api/internal/application/sequence"
	"github.com/jhoicas/Alquiler-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeCounter contador en memoria, seguro para concurrencia.
type fakeCounter struct {
	mu     sync.Mutex
	counts map[string]int64
	err    error
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{counts: make(map[string]int64)}
}

func (f *fakeCounter) Next(_ context.Context, prefix string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	f.counts[prefix]++
	return f.counts[prefix], nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestNextCode_FormateaConPrefijo(t *testing.T) {
	uc := appsequence.NewUseCase(newFakeCounter(), 10)

	code, err := uc.NextCode(context.Background(), "PD")

	require.NoError(t, err)
	assert.Equal(t, "PD00000001", code)
}

func TestNextCode_SeriesIndependientesPorPrefijo(t *testing.T) {
	uc := appsequence.NewUseCase(newFakeCounter(), 10)
	ctx := context.Background()

	pd1, _ := uc.NextCode(ctx, "PD")
	rc1, _ := uc.NextCode(ctx, "RC")
	pd2, _ := uc.NextCode(ctx, "PD")

	assert.Equal(t, "PD00000001", pd1)
	assert.Equal(t, "RC00000001", rc1, "cada prefijo arranca su propia serie")
	assert.Equal(t, "PD00000002", pd2)
}

func TestNextCode_ErrorDelContadorSePropaga(t *testing.T) {
	counter := newFakeCounter()
	counter.err = domain.ErrTransientStore
	uc := appsequence.NewUseCase(counter, 10)

	code, err := uc.NextCode(context.Background(), "PD")

	assert.ErrorIs(t, err, domain.ErrTransientStore)
	assert.Empty(t, code, "nunca se fabrica un código local ante fallo")
}

// TestNextCode_ConcurrenciaSinDuplicados emite códigos desde varias
// goroutines y verifica que no hay repetidos ni huecos.
func TestNextCode_ConcurrenciaSinDuplicados(t *testing.T) {
	const goroutines = 20
	const perGoroutine = 25

	uc := appsequence.NewUseCase(newFakeCounter(), 10)
	ctx := context.Background()

	var wg sync.WaitGroup
	codes := make(chan string, goroutines*perGoroutine)
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				code, err := uc.NextCode(ctx, "RC")
				assert.NoError(t, err)
				codes <- code
			}
		}()
	}
	wg.Wait()
	close(codes)

	seen := make(map[string]bool, goroutines*perGoroutine)
	for code := range codes {
		assert.False(t, seen[code], "código duplicado: %s", code)
		seen[code] = true
	}
	assert.Len(t, seen, goroutines*perGoroutine)
}
