package contract

// bind maps positional and named actuals onto the declared parameters,
// honoring defaults. fixed covers every non-variadic parameter in
// declaration order; extras is the variadic tail. Binding failures are
// invocation errors, never contract violations.
func (c *Contract) bind(args []any, named map[string]any) (fixed []any, extras []any, err error) {
	variadic := c.fnType.IsVariadic()
	fixedCount := len(c.params)
	if variadic {
		fixedCount--
	}

	fixed = make([]any, fixedCount)
	bound := make([]bool, fixedCount)

	for i, a := range args {
		switch {
		case i < fixedCount:
			fixed[i] = a
			bound[i] = true
		case variadic:
			extras = append(extras, a)
		default:
			return nil, nil, invocationErr(c.name,
				"too many arguments: takes %d, got %d", fixedCount, len(args))
		}
	}

	for name, v := range named {
		i, ok := c.paramIndex[name]
		if !ok {
			return nil, nil, invocationErr(c.name, "unknown argument %q", name)
		}
		if variadic && i == len(c.params)-1 {
			return nil, nil, invocationErr(c.name,
				"variadic parameter %q cannot be passed by name", name)
		}
		if bound[i] {
			return nil, nil, invocationErr(c.name, "argument %q bound twice", name)
		}
		fixed[i] = v
		bound[i] = true
	}

	for i := range fixed {
		if bound[i] {
			continue
		}
		if c.params[i].HasDefault {
			fixed[i] = c.params[i].Default
			continue
		}
		return nil, nil, invocationErr(c.name, "missing required argument %q", c.params[i].Name)
	}

	return fixed, extras, nil
}
