package bridgebeam

// HoleMargin is kept between a clamped lifting hole centre and the flange
// or mid-length it was clamped against. It equals LiftingHoleRadius.
const HoleMargin = LiftingHoleRadius

// Resolve stores value into field f and propagates the edit so p stays
// consistent:
//   - an edit of BeamHeight is absorbed by the web height;
//   - an edit of any other height component changes BeamHeight;
//   - HoleHeight above the top flange or below the bottom flange is pulled
//     back HoleMargin inside it;
//   - HoleDepth at or past mid-length is pulled back to HoleMargin before it.
//
// Other fields are stored as given. Resolve reports whether p changed.
func (p *Parameters) Resolve(f Field, value float64) bool {
	before := *p
	if !p.Set(f, value) {
		return false
	}
	switch f {
	case BeamHeight:
		p.Web.Height = p.webHeight()
	case TopShHeight, RibHeight, BotShUpHeight, BotShLowHeight:
		p.Height = p.heightSum()
	case HoleHeight:
		p.Hole.Height = p.clampHoleHeight(value)
	case HoleDepth:
		p.Hole.Depth = p.clampHoleDepth(value)
	}
	return *p != before
}

func (p Parameters) clampHoleHeight(v float64) float64 {
	top := p.Height - p.TopFlange.Height
	bottom := p.BottomFlangeHeight()
	switch {
	case v > top:
		return top - HoleMargin
	case v < bottom:
		return bottom + HoleMargin
	}
	return v
}

func (p Parameters) clampHoleDepth(v float64) float64 {
	if v >= p.Length/2 {
		return p.Length/2 - HoleMargin
	}
	return v
}
