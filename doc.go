/*
Package polaris evaluates a small language of 2D rotations and translations
and composes the results into one placement per entity, typically a part on
a printed circuit board.

Expressions combine numbers with + - * / and transforms with @, where
"a @ b" means b happens first, then a. Built-in functions build transforms
with unit conversion: deg, grad, rad and turn build rotations; inch, mil
and mm build translations in millimetres.

	mm(10, 5) @ deg(90)

A script binds reference prefixes to expressions. Inside a matcher the
variable index holds the trailing number of the entity reference.

	script(polaris)
	  R:  mm(2.54 * index, 0)
	  R1: deg(180)

Expression example:

	n, err := polaris.ParseExpression("inch(1, 0) @ deg(45)", nil)
	if err != nil {
		// handle error
	}
	t, err := polaris.EvaluateTransform(polaris.NewRootScope(), n)

Resolver example:

	placements, err := polaris.Resolve(scripts, []polaris.Entity{
		{Reference: "R12", Expression: "mm(0, 1)"},
	}, nil)
	if err != nil {
		// handle error: no entity is placed
	}
	_ = placements["R12"]

Validator example:

	matchers, _ := polaris.ParseScript(src, nil)
	issues := polaris.Validate(matchers, entities, nil)
	if len(issues) != 0 {
		// handle validation issues
	}

Writer example:

	out, err := polaris.FormatScript(matchers, nil)
*/
package polaris
