package encoder

import (
	"github.com/arloliu/nibmidi/event"
	"github.com/arloliu/nibmidi/format"
)

// DroppedRecord describes an incomplete record discarded at finalization.
type DroppedRecord struct {
	// RecordID is the record's position among the cycles of the assembly call.
	RecordID int
	// Missing lists the field kinds the record never received.
	Missing []format.FieldKind
}

// finalize turns complete records into event pairs in record order and reports
// how many incomplete records were dropped. Records are only read.
func (e *Encoder) finalize(records []record) ([]event.Pair, int) {
	pairs := make([]event.Pair, 0, len(records))
	dropped := 0

	for id := range records {
		rec := &records[id]
		if !rec.complete() {
			dropped++
			if e.cfg.dropObserver != nil {
				e.cfg.dropObserver(DroppedRecord{RecordID: id, Missing: rec.missing()})
			}

			continue
		}

		pairs = append(pairs, event.NewPair(
			rec.values[format.KindChannel],
			rec.values[format.KindNote],
			rec.values[format.KindVelocity],
			rec.values[format.KindTiming],
			rec.values[format.KindLength],
		))
	}

	return pairs, dropped
}
