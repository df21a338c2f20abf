package detect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moinsen-dev/jscpd2025/core"
	"github.com/moinsen-dev/jscpd2025/core/storage"
)

func newTestCoordinator(sources map[string]core.Source, subs ...core.Subscriber) *Coordinator {
	return &Coordinator{
		Config:      core.Config{MinLines: 1, MaxLines: 1000, MinTokens: 5, Mode: core.ModeMild},
		Store:       storage.NewMemory(),
		Subscribers: subs,
		Sources:     sources,
	}
}

const dupBody = "func helper() int {\n\treturn a + b + c + d\n}\n"

func TestCoordinator_ProcessEmitsMatchSourceAndEnd(t *testing.T) {
	src := core.Source{SourceID: "a.go", Format: "go", Content: dupBody, Lines: 3}
	co := newTestCoordinator(map[string]core.Source{"a.go": src})

	var names []core.EventName
	sub := core.SubscriberFuncs{
		core.EventMatchSource:    func(e core.Event) { names = append(names, e.Name) },
		core.EventStartDetection: func(e core.Event) { names = append(names, e.Name) },
		core.EventEnd:            func(e core.Event) { names = append(names, e.Name) },
	}
	co.Subscribers = []core.Subscriber{sub}

	history := History{}
	p := co.Prepare(src)
	res, err := co.Process(context.Background(), p, history)
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, []core.EventName{core.EventMatchSource, core.EventStartDetection, core.EventEnd}, names)
}

func TestCoordinator_SecondIdenticalFileEmitsCloneFound(t *testing.T) {
	srcA := core.Source{SourceID: "a.go", Format: "go", Content: dupBody, Lines: 3}
	srcB := core.Source{SourceID: "b.go", Format: "go", Content: dupBody, Lines: 3}
	sources := map[string]core.Source{"a.go": srcA, "b.go": srcB}
	co := newTestCoordinator(sources)

	var found []core.Clone
	co.Subscribers = []core.Subscriber{core.SubscriberFuncs{
		core.EventCloneFound: func(e core.Event) {
			found = append(found, e.Payload.(core.CloneFoundPayload).Clone)
		},
	}}

	history := History{}
	_, err := co.Process(context.Background(), co.Prepare(srcA), history)
	require.NoError(t, err)
	_, err = co.Process(context.Background(), co.Prepare(srcB), history)
	require.NoError(t, err)

	require.Len(t, found, 1)
	c := found[0]
	assert.Equal(t, "a.go", c.DuplicationA.SourceID)
	assert.Equal(t, "b.go", c.DuplicationB.SourceID)
	assert.NotEmpty(t, c.DuplicationA.Fragment)
	assert.NotEmpty(t, c.DuplicationB.Fragment)
}

func TestCoordinator_UnknownFormatEmitsSkippedSource(t *testing.T) {
	src := core.Source{SourceID: "x.cobol", Format: "cobol", Content: "IDENTIFICATION DIVISION.", Lines: 1}
	co := newTestCoordinator(map[string]core.Source{"x.cobol": src})

	var reasons []string
	co.Subscribers = []core.Subscriber{core.SubscriberFuncs{
		core.EventSkippedSource: func(e core.Event) {
			reasons = append(reasons, e.Payload.(core.SkippedSourcePayload).Reason)
		},
	}}

	history := History{}
	res, err := co.Process(context.Background(), co.Prepare(src), history)
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Len(t, reasons, 1)
}

func TestCoordinator_BelowMinTokensProducesNoClones(t *testing.T) {
	src := core.Source{SourceID: "tiny.go", Format: "go", Content: "x", Lines: 1}
	co := newTestCoordinator(map[string]core.Source{"tiny.go": src})

	history := History{}
	res, err := co.Process(context.Background(), co.Prepare(src), history)
	require.NoError(t, err)
	assert.Empty(t, res.Clones)
}
