package viewstate

import (
	"net/url"
	"strconv"
)

// Query keys of the flat key/value encoding. The same record backs the chart
// server's query string and the viewer's copy-link share.
const (
	keyRoom    = "room"
	keyOutdoor = "outdoor"
	keySlope   = "slope"
	keyFlowMin = "flowmin"
	keyFlowMax = "flowmax"
	keyAll     = "all"
	keyGrid    = "grid"
	keyGuides  = "guides"
)

// Encode renders the parameters as url.Values at their declared precision
// (room 0.1°, slope 0.01, the rest whole degrees).
func (p Params) Encode() url.Values {
	v := url.Values{}
	v.Set(keyRoom, strconv.FormatFloat(p.Room, 'f', 1, 64))
	v.Set(keyOutdoor, strconv.FormatFloat(p.Outdoor, 'f', 0, 64))
	v.Set(keySlope, strconv.FormatFloat(p.Slope, 'f', 2, 64))
	v.Set(keyFlowMin, strconv.FormatFloat(p.FlowMin, 'f', 0, 64))
	v.Set(keyFlowMax, strconv.FormatFloat(p.FlowMax, 'f', 0, 64))
	v.Set(keyAll, strconv.FormatBool(p.ShowAll))
	v.Set(keyGrid, strconv.FormatBool(p.ShowGrid))
	v.Set(keyGuides, strconv.FormatBool(p.ShowGuides))
	return v
}

// Decode builds a parameter set from url.Values. Absent or malformed keys
// keep their defaults; numeric values pass through the setters so they are
// clamped and snapped like interactive input.
func Decode(v url.Values) Params {
	p := Defaults()
	if f, err := strconv.ParseFloat(v.Get(keyRoom), 64); err == nil {
		p.SetRoom(f)
	}
	if f, err := strconv.ParseFloat(v.Get(keyOutdoor), 64); err == nil {
		p.SetOutdoor(f)
	}
	if f, err := strconv.ParseFloat(v.Get(keySlope), 64); err == nil {
		p.SetSlope(f)
	}
	if f, err := strconv.ParseFloat(v.Get(keyFlowMin), 64); err == nil {
		p.SetFlowMin(f)
	}
	if f, err := strconv.ParseFloat(v.Get(keyFlowMax), 64); err == nil {
		p.SetFlowMax(f)
	}
	if b, err := strconv.ParseBool(v.Get(keyAll)); err == nil {
		p.ShowAll = b
	}
	if b, err := strconv.ParseBool(v.Get(keyGrid)); err == nil {
		p.ShowGrid = b
	}
	if b, err := strconv.ParseBool(v.Get(keyGuides)); err == nil {
		p.ShowGuides = b
	}
	return p
}
