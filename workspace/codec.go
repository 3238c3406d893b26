// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package workspace

import (
	"encoding/json"
	"os"

	"github.com/db47h/logicsim"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Saved circuits are JSON objects {"gates": [...], "wires": [...]}. Field
// names are those of the desktop editor workspace files. Missing fields take
// their zero value, except clockFrequency which defaults to 1.

type document struct {
	Gates []gateDoc `json:"gates"`
	Wires []wireDoc `json:"wires"`
}

type gateDoc struct {
	ID             string   `json:"id"`
	BaseName       string   `json:"baseName,omitempty"`
	Name           string   `json:"name,omitempty"` // legacy
	UserSuffix     string   `json:"userSuffix,omitempty"`
	Description    string   `json:"description,omitempty"`
	ComponentValue string   `json:"componentValue,omitempty"`
	Position       point    `json:"position"`
	InputPins      []pinDoc `json:"inputPins"`
	OutputPins     []pinDoc `json:"outputPins"`
	Indicator      bool     `json:"isIndicatorActive"`
	DisplayValue   int      `json:"displayValue"`
	InternalState  bool     `json:"internalState"`
	PreviousClock  bool     `json:"previousClock"`
	MemoryData     []int    `json:"memoryData"`
	MemoryAddress  int      `json:"memoryAddress"`
	ClockFrequency *float64 `json:"clockFrequency,omitempty"`
	ClockState     bool     `json:"clockState"`
}

type pinDoc struct {
	ID     string             `json:"id"`
	Type   logicsim.Direction `json:"type"`
	Value  bool               `json:"value"`
	Offset point              `json:"offset"`
	Label  string             `json:"label,omitempty"`
}

type wireDoc struct {
	ID           string             `json:"id"`
	FromGateID   string             `json:"fromGateID"`
	FromPinIndex int                `json:"fromPinIndex"`
	ToGateID     string             `json:"toGateID"`
	ToPinIndex   int                `json:"toPinIndex"`
	Signal       bool               `json:"signal"`
	Mode         *logicsim.WireMode `json:"mode,omitempty"`
}

// point is a canvas position. It is written as [x, y] and read from either
// [x, y] or {"x": x, "y": y}.
type point logicsim.Point

func (p point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

func (p *point) UnmarshalJSON(data []byte) error {
	var xy [2]float64
	if err := json.Unmarshal(data, &xy); err == nil {
		p.X, p.Y = xy[0], xy[1]
		return nil
	}
	var o logicsim.Point
	if err := json.Unmarshal(data, &o); err != nil {
		return errors.Wrap(err, "position")
	}
	*p = point(o)
	return nil
}

// Marshal returns the JSON encoding of c.
//
func Marshal(c *logicsim.Circuit) ([]byte, error) {
	d := document{
		Gates: make([]gateDoc, 0, len(c.Gates)),
		Wires: make([]wireDoc, 0, len(c.Wires)),
	}
	for _, g := range c.Gates {
		d.Gates = append(d.Gates, encodeGate(g))
	}
	for _, w := range c.Wires {
		m := w.Mode
		d.Wires = append(d.Wires, wireDoc{
			ID:           w.ID,
			FromGateID:   w.From,
			FromPinIndex: w.FromPin,
			ToGateID:     w.To,
			ToPinIndex:   w.ToPin,
			Signal:       w.Signal,
			Mode:         &m,
		})
	}
	data, err := json.MarshalIndent(&d, "", "  ")
	return data, errors.Wrap(err, "encode circuit")
}

func encodeGate(g *logicsim.Gate) gateDoc {
	name := g.Kind.String()
	if g.Kind == logicsim.Unknown && g.RawKind != "" {
		name = g.RawKind
	}
	f := g.ClockFrequency
	d := gateDoc{
		ID:             g.ID,
		BaseName:       name,
		UserSuffix:     g.Suffix,
		Description:    g.Description,
		ComponentValue: g.Value,
		Position:       point(g.Position),
		InputPins:      encodePins(g.Inputs),
		OutputPins:     encodePins(g.Outputs),
		Indicator:      g.Indicator,
		DisplayValue:   g.Display,
		InternalState:  g.Latched,
		PreviousClock:  g.PrevClock,
		MemoryData:     make([]int, len(g.Memory)),
		MemoryAddress:  g.Address,
		ClockFrequency: &f,
		ClockState:     g.ClockState,
	}
	for i, v := range g.Memory {
		d.MemoryData[i] = int(v)
	}
	return d
}

func encodePins(ps []logicsim.Pin) []pinDoc {
	r := make([]pinDoc, len(ps))
	for i, p := range ps {
		r[i] = pinDoc{ID: p.ID, Type: p.Dir, Value: p.Value, Offset: point(p.Offset), Label: p.Label}
	}
	return r
}

// Unmarshal decodes a circuit saved by Marshal or by the desktop editor.
//
// Decoding is lenient: unknown kinds decode to logicsim.Unknown with their
// tag kept in RawKind, gates without pin lists get the default layout of
// their kind, wires without a mode are classified with
// logicsim.ClassifyWire, and missing IDs are generated.
//
func Unmarshal(data []byte) (*logicsim.Circuit, error) {
	var d document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrap(err, "decode circuit")
	}
	c := &logicsim.Circuit{
		Gates: make([]*logicsim.Gate, 0, len(d.Gates)),
		Wires: make([]*logicsim.Wire, 0, len(d.Wires)),
	}
	for i := range d.Gates {
		c.Gates = append(c.Gates, decodeGate(&d.Gates[i]))
	}
	for _, wd := range d.Wires {
		w := &logicsim.Wire{
			ID:      wd.ID,
			From:    wd.FromGateID,
			FromPin: wd.FromPinIndex,
			To:      wd.ToGateID,
			ToPin:   wd.ToPinIndex,
			Signal:  wd.Signal,
		}
		if w.ID == "" {
			w.ID = uuid.NewString()
		}
		if wd.Mode != nil {
			w.Mode = *wd.Mode
		} else {
			w.Mode = logicsim.ClassifyWire(c.Gate(w.From), c.Gate(w.To), w.ToPin)
		}
		c.Wires = append(c.Wires, w)
	}
	return c, nil
}

func decodeGate(d *gateDoc) *logicsim.Gate {
	name := d.BaseName
	if name == "" {
		name = d.Name
	}
	if name == "" {
		name = "GATE"
	}
	k := logicsim.ParseKind(name)
	g := logicsim.NewGate(k)
	if k == logicsim.Unknown {
		g.RawKind = name
	}
	if d.ID != "" {
		g.ID = d.ID
	}
	g.Suffix = d.UserSuffix
	g.Description = d.Description
	g.Value = d.ComponentValue
	g.Position = logicsim.Point(d.Position)
	if d.InputPins != nil {
		g.Inputs = decodePins(d.InputPins, logicsim.DirIn)
	}
	if d.OutputPins != nil {
		g.Outputs = decodePins(d.OutputPins, logicsim.DirOut)
	}
	g.State = logicsim.State{
		Latched:        d.InternalState,
		PrevClock:      d.PreviousClock,
		Address:        d.MemoryAddress,
		Indicator:      d.Indicator,
		Display:        d.DisplayValue,
		ClockFrequency: 1,
		ClockState:     d.ClockState,
	}
	if d.ClockFrequency != nil {
		g.ClockFrequency = *d.ClockFrequency
	}
	if len(d.MemoryData) > 0 {
		g.Memory = make([]uint8, len(d.MemoryData))
		for i, v := range d.MemoryData {
			g.Memory[i] = uint8(v)
		}
	}
	// older files keep the closed state of buttons and switches in their
	// output pin
	if (k == logicsim.Button || k == logicsim.Switch) && !g.Latched && g.Out(0) {
		g.Latched = true
	}
	return g
}

func decodePins(ps []pinDoc, dir logicsim.Direction) []logicsim.Pin {
	if len(ps) == 0 {
		return nil
	}
	r := make([]logicsim.Pin, len(ps))
	for i, p := range ps {
		r[i] = logicsim.Pin{ID: p.ID, Dir: dir, Value: p.Value, Label: p.Label, Offset: logicsim.Point(p.Offset)}
		if r[i].ID == "" {
			r[i].ID = uuid.NewString()
		}
	}
	return r
}

// Save writes c to the named file.
//
func Save(path string, c *logicsim.Circuit) error {
	data, err := Marshal(c)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "save circuit")
	}
	logrus.WithFields(logrus.Fields{"path": path, "gates": len(c.Gates), "wires": len(c.Wires)}).Info("circuit saved")
	return nil
}

// Load reads a circuit from the named file.
//
func Load(path string) (*logicsim.Circuit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "load circuit")
	}
	c, err := Unmarshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	logrus.WithFields(logrus.Fields{"path": path, "gates": len(c.Gates), "wires": len(c.Wires)}).Info("circuit loaded")
	return c, nil
}
