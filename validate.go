package axisscale

// validate checks in and resolves the projection mode.
// Scale kinds are checked first so a logarithmic axis is always reported as
// ErrUnsupportedScale, whatever else is wrong with the input.
func validate(in Input) ([]Diagnostic, error) {
	for _, a := range axes {
		switch in.Scales[a] {
		case Linear:
		case Log:
			return nil, unsupported("scale."+a.String(), "is logarithmic")
		default:
			return nil, invalid("scale."+a.String(), "is not a known scale kind")
		}
	}

	for _, a := range axes {
		r := in.Ranges[a]
		field := "limits." + a.String()
		if !isFinite(r.Min) || !isFinite(r.Max) {
			return nil, invalid(field, "must be finite")
		}
		if !(r.Extent() > 0) || !isFinite(r.Extent()) {
			return nil, invalid(field, "must have a positive finite extent")
		}
		c := in.Aspect.Vec().Component(a)
		if !isFinite(c) || !(c > 0) {
			return nil, invalid("aspect."+a.String(), "must be positive and finite")
		}
	}

	v := in.View
	if !isFinite(v.Azimuth) || !isFinite(v.Elevation) {
		return nil, invalid("view", "angles must be finite")
	}
	if !v.Up.IsFinite() || v.Up.IsZero() {
		return nil, invalid("view.up", "must be a finite non-zero vector")
	}

	vp := in.Viewport
	if !isFinite(vp.Width) || !(vp.Width > 0) {
		return nil, invalid("viewport.width", "must be positive and finite")
	}
	if !isFinite(vp.Height) || !(vp.Height > 0) {
		return nil, invalid("viewport.height", "must be positive and finite")
	}

	var diags []Diagnostic
	switch in.Projection {
	case Orthographic:
	case Perspective:
		diags = append(diags, Diagnostic{
			Code:    DiagPerspectiveApproximated,
			Message: "perspective projection approximated as orthographic",
		})
	default:
		return nil, invalid("projection", "is not a known projection mode")
	}
	return diags, nil
}

func invalid(field, reason string) error {
	return &InputError{Field: field, Reason: reason, Err: ErrInvalidInput}
}

func unsupported(field, reason string) error {
	return &InputError{Field: field, Reason: reason, Err: ErrUnsupportedScale}
}
