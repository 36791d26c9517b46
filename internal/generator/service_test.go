package generator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nomerror "github.com/msto63/nomen/foundation/core/error"
	"github.com/msto63/nomen/internal/pattern"
	"github.com/msto63/nomen/internal/random"
)

type fakeHistory struct {
	issued    map[string]bool
	recorded  []string
	runID     string
	seed      uint64
	existsErr error
}

func newFakeHistory(issued ...string) *fakeHistory {
	h := &fakeHistory{issued: map[string]bool{}}
	for _, o := range issued {
		h.issued[o] = true
	}
	return h
}

func (h *fakeHistory) Exists(_ context.Context, _, output string) (bool, error) {
	return h.issued[output], h.existsErr
}

func (h *fakeHistory) Record(_ context.Context, runID, _ string, seed uint64, outputs []string) error {
	h.runID, h.seed = runID, seed
	h.recorded = append(h.recorded, outputs...)
	return nil
}

func seed(v uint64) *uint64 { return &v }

func newTestService(opts Options) *Service {
	opts.NewRunID = func() string { return "run-1" }
	opts.Now = func() time.Time { return time.Unix(0, 1234) }
	return New(opts)
}

func TestGenerateMatchesDirectEvaluation(t *testing.T) {
	svc := newTestService(Options{})

	batch, err := svc.Generate(context.Background(), Request{Expression: "c:2:4-v-{d-%AB}", Count: 5, Seed: seed(99)})
	require.NoError(t, err)

	root := pattern.MustCompile("c:2:4-v-{d-%AB}")
	rng := random.New(99)
	want := make([]string, 5)
	for i := range want {
		want[i] = pattern.Generate(root, rng)
	}

	assert.Equal(t, want, batch.Outputs)
	assert.Equal(t, uint64(99), batch.Seed)
	assert.Equal(t, "run-1", batch.RunID)
	assert.Equal(t, 5, batch.Attempts)
}

func TestGenerateSeedSources(t *testing.T) {
	svc := newTestService(Options{})
	ctx := context.Background()

	fromText, err := svc.Generate(ctx, Request{Expression: "c", Count: 1, SeedText: "hello"})
	require.NoError(t, err)
	assert.Equal(t, random.SeedFromString("hello"), fromText.Seed)

	fromClock, err := svc.Generate(ctx, Request{Expression: "c", Count: 1})
	require.NoError(t, err)
	assert.Equal(t, random.SeedFromTime(time.Unix(0, 1234)), fromClock.Seed)

	explicit, err := svc.Generate(ctx, Request{Expression: "c", Count: 1, Seed: seed(7), SeedText: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, uint64(7), explicit.Seed)
}

func TestGenerateReproducible(t *testing.T) {
	svc := newTestService(Options{})
	ctx := context.Background()

	a, err := svc.Generate(ctx, Request{Expression: "@password", Count: 10, SeedText: "team-offsite"})
	require.NoError(t, err)
	b, err := svc.Generate(ctx, Request{Expression: "@password", Count: 10, Seed: seed(a.Seed)})
	require.NoError(t, err)

	assert.Equal(t, a.Outputs, b.Outputs)
}

func TestGeneratePresetReference(t *testing.T) {
	svc := newTestService(Options{})

	batch, err := svc.Generate(context.Background(), Request{Expression: "@pin", Count: 3, Seed: seed(1)})
	require.NoError(t, err)

	assert.Equal(t, "@pin", batch.Expression)
	assert.Equal(t, "d:4", batch.Pattern)
	for _, out := range batch.Outputs {
		assert.Len(t, out, 4)
	}

	_, err = svc.Generate(context.Background(), Request{Expression: "@nope", Count: 1})
	assert.True(t, nomerror.HasCode(err, nomerror.CodePresetNotFound))
}

func TestGenerateInvalidRequests(t *testing.T) {
	svc := newTestService(Options{MaxPatternLength: 8})
	ctx := context.Background()

	tests := []struct {
		name string
		req  Request
		code nomerror.Code
	}{
		{"zero count", Request{Expression: "c", Count: 0}, nomerror.CodeInvalidInput},
		{"pattern too long", Request{Expression: strings.Repeat("c-", 5) + "c", Count: 1}, nomerror.CodeInvalidInput},
		{"compile error", Request{Expression: "[c-v", Count: 1}, nomerror.CodePatternUnbalancedGroup},
		{"empty pattern", Request{Expression: "", Count: 1}, nomerror.CodePatternEmptyConstruct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch, err := svc.Generate(ctx, tt.req)
			require.Error(t, err)
			assert.Nil(t, batch)
			assert.Equal(t, tt.code, nomerror.GetCode(err))
		})
	}
}

func TestGenerateUniqueWithinBatch(t *testing.T) {
	svc := newTestService(Options{})

	batch, err := svc.Generate(context.Background(), Request{Expression: "d", Count: 10, Seed: seed(3), Unique: true})
	require.NoError(t, err)

	assert.ElementsMatch(t, strings.Split("0123456789", ""), batch.Outputs)
	assert.GreaterOrEqual(t, batch.Attempts, 10)
}

func TestGenerateUniqueExhausted(t *testing.T) {
	svc := newTestService(Options{MaxAttempts: 50})

	_, err := svc.Generate(context.Background(), Request{Expression: "d", Count: 11, Seed: seed(3), Unique: true})
	require.Error(t, err)
	assert.True(t, nomerror.HasCode(err, nomerror.CodeExhausted))
}

func TestGenerateUniqueAgainstHistory(t *testing.T) {
	hist := newFakeHistory("0", "1", "2", "3", "4", "5", "6", "7", "8")
	svc := newTestService(Options{History: hist})

	batch, err := svc.Generate(context.Background(), Request{Expression: "d", Count: 1, Seed: seed(5), Unique: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"9"}, batch.Outputs)

	assert.Equal(t, []string{"9"}, hist.recorded)
	assert.Equal(t, "run-1", hist.runID)
	assert.Equal(t, uint64(5), hist.seed)
}

func TestGenerateRecordsWithoutUnique(t *testing.T) {
	hist := newFakeHistory()
	svc := newTestService(Options{History: hist})

	batch, err := svc.Generate(context.Background(), Request{Expression: "c:3", Count: 4, Seed: seed(8)})
	require.NoError(t, err)
	assert.Equal(t, batch.Outputs, hist.recorded)
}

func TestGenerateHistoryError(t *testing.T) {
	hist := newFakeHistory()
	hist.existsErr = nomerror.New("disk gone").WithCode(nomerror.CodeStorageError)
	svc := newTestService(Options{History: hist})

	_, err := svc.Generate(context.Background(), Request{Expression: "c", Count: 1, Unique: true})
	assert.True(t, nomerror.HasCode(err, nomerror.CodeStorageError))
	assert.Empty(t, hist.recorded)
}

func TestGenerateCanceled(t *testing.T) {
	svc := newTestService(Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Generate(ctx, Request{Expression: "c", Count: 3})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestCompile(t *testing.T) {
	svc := newTestService(Options{})

	root, text, err := svc.Compile("@syllables")
	require.NoError(t, err)
	assert.Equal(t, "[c-v]:2:4-c?", text)
	assert.NotNil(t, root)
}

func TestDefaultRunIDIsUUID(t *testing.T) {
	svc := New(Options{})

	batch, err := svc.Generate(context.Background(), Request{Expression: "c", Count: 1, Seed: seed(1)})
	require.NoError(t, err)
	assert.Len(t, batch.RunID, 36)
	assert.Equal(t, 4, strings.Count(batch.RunID, "-"))
}

func TestCompileCachesTrees(t *testing.T) {
	svc := newTestService(Options{})

	first, _, err := svc.Compile("[c-v]:2")
	require.NoError(t, err)
	second, _, err := svc.Compile("[c-v]:2")
	require.NoError(t, err)

	assert.Same(t, first, second)
	hits, misses := svc.CacheStats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)

	// failed compilations are not cached
	_, _, err = svc.Compile("c-")
	require.Error(t, err)
	_, _, err = svc.Compile("c-")
	require.Error(t, err)
	_, misses = svc.CacheStats()
	assert.Equal(t, int64(3), misses)
}

func TestCompileCacheDisabled(t *testing.T) {
	svc := newTestService(Options{CacheSize: -1})

	first, _, err := svc.Compile("c:2")
	require.NoError(t, err)
	second, _, err := svc.Compile("c:2")
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	hits, misses := svc.CacheStats()
	assert.Zero(t, hits)
	assert.Zero(t, misses)
}

func TestCompileRejectsOversizedOutput(t *testing.T) {
	svc := newTestService(Options{CacheSize: -1})

	// each bound is small but the nesting multiplies them to 1e9
	root, _, err := svc.Compile("[[c:1000]:1000]:1000")
	require.Error(t, err)
	assert.Nil(t, root)
	assert.True(t, nomerror.HasCode(err, nomerror.CodeInvalidInput))

	var nomErr *nomerror.Error
	require.True(t, errors.As(err, &nomErr))
	longest, _ := nomErr.Detail("longest")
	assert.Equal(t, 1000*1000*1000, longest)

	_, err = svc.Generate(context.Background(), Request{Expression: "[[c:1000]:1000]:1000", Count: 1, Seed: seed(1)})
	assert.True(t, nomerror.HasCode(err, nomerror.CodeInvalidInput))
}

func TestCompileOutputLengthLimit(t *testing.T) {
	svc := newTestService(Options{MaxOutputLength: 10})

	_, _, err := svc.Compile("c:2:10")
	require.NoError(t, err)

	_, _, err = svc.Compile("c:2:11")
	assert.True(t, nomerror.HasCode(err, nomerror.CodeInvalidInput))

	// the longest output counts, not the shortest
	_, _, err = svc.Compile("[c:5]:1:3")
	assert.True(t, nomerror.HasCode(err, nomerror.CodeInvalidInput))

	// a single large bound within the limit is a valid pattern
	wide := newTestService(Options{})
	batch, err := wide.Generate(context.Background(), Request{Expression: "c:1001", Count: 1, Seed: seed(3)})
	require.NoError(t, err)
	assert.Len(t, batch.Outputs[0], 1001)
}
