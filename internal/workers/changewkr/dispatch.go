package changewkr

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/RiccardoGrin/board-brawl-sub001/internal/constant"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/model/types"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/change"
	"github.com/RiccardoGrin/board-brawl-sub001/internal/pkg/statserr"
)

// dispatch decodes the snapshots of event and hands them to the handler of subject.
func (w *Worker) dispatch(ctx context.Context, subject string, c codec, event *types.ChangeEvent) error {
	switch subject {
	case constant.ChangeSubjectSessions:
		ch, ok, err := decodeChange[types.GameSession](c, w.validate, event)
		if err != nil || !ok {
			return err
		}
		return w.Session.HandleWrite(ctx, ch)

	case constant.ChangeSubjectTournaments:
		ch, ok, err := decodeChange[types.Tournament](c, w.validate, event)
		if err != nil || !ok {
			return err
		}
		return w.Tournament.HandleWrite(ctx, ch)

	case constant.ChangeSubjectOwnedGamesCreated:
		if !event.HasAfter() {
			return statserr.ErrMalformedRecord.Msg("owned game creation without an after snapshot")
		}
		record, err := decodeRecord[types.OwnedGameRecord](c, w.validate, event.After)
		if err != nil {
			return err
		}
		return w.OwnedGame.HandleCreated(ctx, *record)

	case constant.ChangeSubjectOwnedGamesDeleted:
		if !event.HasBefore() {
			return statserr.ErrMalformedRecord.Msg("owned game deletion without a before snapshot")
		}
		record, err := decodeRecord[types.OwnedGameRecord](c, w.validate, event.Before)
		if err != nil {
			return err
		}
		return w.OwnedGame.HandleDeleted(ctx, *record)

	default:
		return statserr.ErrMalformedRecord.Msg("unknown change subject %q", subject)
	}
}

// decodeChange returns false when neither side is present: the record was
// created and deleted within one event and nothing changed.
func decodeChange[T any](c codec, validate *validator.Validate, event *types.ChangeEvent) (change.Change[T], bool, error) {
	var before, after *T
	var err error
	if event.HasBefore() {
		if before, err = decodeRecord[T](c, validate, event.Before); err != nil {
			return nil, false, err
		}
	}
	if event.HasAfter() {
		if after, err = decodeRecord[T](c, validate, event.After); err != nil {
			return nil, false, err
		}
	}
	ch, ok := change.From(before, after)
	return ch, ok, nil
}

func decodeRecord[T any](c codec, validate *validator.Validate, data []byte) (*T, error) {
	var record T
	if err := c.Unmarshal(data, &record); err != nil {
		return nil, statserr.ErrMalformedRecord.Msg("undecodable %s record", c.Name()).Wrap(err)
	}
	if err := validate.Struct(&record); err != nil {
		return nil, statserr.ErrMalformedRecord.Msg("invalid record").Wrap(err)
	}
	return &record, nil
}
