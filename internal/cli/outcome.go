package cli

import (
	"playlist-organiser/internal/drag"
	"playlist-organiser/internal/model"
)

// outcomeView is the printable form of a drag.Outcome.
type outcomeView struct {
	Outcome string                `json:"outcome"`
	ItemID  string                `json:"itemId,omitempty"`
	From    *model.InsertionPoint `json:"from,omitempty"`
	Target  *model.InsertionPoint `json:"target,omitempty"`
	Landed  *model.InsertionPoint `json:"landed,omitempty"`
	Changed bool                  `json:"changed"`
	Error   string                `json:"error,omitempty"`
	Version uint64                `json:"version"`
}

func viewOutcome(o drag.Outcome) outcomeView {
	v := outcomeView{
		Outcome: string(o.Kind),
		ItemID:  o.ItemID,
		Target:  o.Target,
		Landed:  o.Landed,
		Changed: o.Changed,
		Version: o.Version,
	}
	if o.ItemID != "" {
		from := o.From
		v.From = &from
	}
	if o.Err != nil {
		v.Error = o.Err.Error()
	}
	return v
}
