package markov

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// stages are the command specific parts of a pipeline run.
type stages struct {
	name string
	// read copies the raw input into the character stream.
	read func(src io.Reader, dst *bufio.Writer) error
	// aggregate drains the character stream into a table.
	aggregate func(src *bufio.Reader) (*Table, error)
	// emit consumes the table decoded from the bulk transfer.
	emit func(t *Table) error
}

// runPipeline runs the three stages of a command as goroutines:
//
//	in ──read──▶ character stream ──aggregate──▶ bulk transfer ──emit──▶ out
//
// The aggregator serializes its table only once the character stream is
// closed, and the emitter decodes only once the whole length-prefixed payload
// has arrived. The stages share no memory: the emitter works on its own
// Table.
//
// A failing stage closes the streams it holds with its error, and the group
// context closes all of them, so no stage stays blocked on a dead peer. The
// first failure is returned.
func runPipeline(ctx context.Context, in io.Reader, p stages, log *slog.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log = log.With("run", uuid.NewString(), "command", p.name)
	g, ctx := errgroup.WithContext(ctx)

	streamR, streamW := io.Pipe()
	bulkR, bulkW := io.Pipe()
	stop := context.AfterFunc(ctx, func() {
		err := context.Cause(ctx)
		streamW.CloseWithError(err)
		streamR.CloseWithError(err)
		bulkW.CloseWithError(err)
		bulkR.CloseWithError(err)
	})
	defer stop()

	g.Go(func() error {
		log.Debug("reader started")
		bw := bufio.NewWriter(streamW)
		err := p.read(in, bw)
		if err == nil {
			err = bw.Flush()
		}
		streamW.CloseWithError(err)
		return stageError("reader", err)
	})

	g.Go(func() error {
		log.Debug("aggregator started")
		t, err := p.aggregate(bufio.NewReader(streamR))
		if err != nil {
			streamR.CloseWithError(err)
			bulkW.CloseWithError(err)
			return stageError("aggregator", err)
		}
		streamR.Close()
		payload := t.AppendWire(nil)
		log.Debug("bulk transfer", "entries", t.Len(), "bytes", len(payload))
		err = writeBulk(bulkW, payload)
		bulkW.CloseWithError(err)
		return stageError("aggregator", err)
	})

	g.Go(func() error {
		log.Debug("emitter started")
		payload, err := readBulk(bulkR)
		bulkR.CloseWithError(err)
		if err != nil {
			return stageError("emitter", err)
		}
		var t Table
		if err := t.UnmarshalBinary(payload); err != nil {
			return stageError("emitter", err)
		}
		return stageError("emitter", p.emit(&t))
	})

	if err := g.Wait(); err != nil {
		log.Debug("pipeline failed", "err", err)
		return err
	}
	log.Debug("pipeline finished")
	return nil
}

// stageError tags a stage failure. Errors that already carry a Kind keep it;
// anything else is reported as ErrPipeline naming the stage.
func stageError(stage string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Kind: KindPipeline, Arg: stage, Err: err}
}
