// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package prompts

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/krallice/azure-tenancy-hub/internal/formengine"
	"github.com/krallice/azure-tenancy-hub/internal/jschema"
)

// RunConfigForm interactively edits a configuration value against its schema
// and returns the final root value. The caller submits the returned root
// verbatim; the original value is never mutated.
func RunConfigForm(schema *jschema.Schema, value any) (any, error) {
	st := &formState{schema: schema, root: value}
	if err := st.edit(formengine.Path{}); err != nil {
		return nil, err
	}
	return st.root, nil
}

// formState holds the latest emitted root. The editable tree is re-rendered
// from it before every operation: one edit produces one new root, and the
// next operation starts from that root.
type formState struct {
	schema *jschema.Schema
	root   any
}

func (st *formState) lookup(path formengine.Path) formengine.Node {
	tree := formengine.Render(st.schema, st.root, func(newRoot any) { st.root = newRoot })
	return formengine.Lookup(tree, path)
}

func (st *formState) edit(path formengine.Path) error {
	switch st.lookup(path).(type) {
	case *formengine.Object:
		return st.editObject(path)
	case *formengine.Array:
		return st.editArray(path)
	case *formengine.Scalar:
		return st.editScalar(path)
	default:
		return fmt.Errorf("no editable field at %q", path.String())
	}
}

func (st *formState) editObject(path formengine.Path) error {
	obj := st.lookup(path).(*formengine.Object)

	if len(obj.Simple) > 0 {
		if err := st.editScalarGroup(path, obj); err != nil {
			return err
		}
	}
	if len(obj.Complex) == 0 {
		return nil
	}

	for {
		obj = st.lookup(path).(*formengine.Object)

		options := make([]huh.Option[string], 0, len(obj.Complex)+1)
		for _, f := range obj.Complex {
			options = append(options, huh.NewOption(sectionLabel(f), f.Name))
		}
		options = append(options, huh.NewOption("Done", ""))

		var pick string
		if err := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title(nodeTitle(obj.Schema(), path) + " sections").
					Options(options...).
					Value(&pick).
					Height(8),
			),
		).WithTheme(Theme()).Run(); err != nil {
			return err
		}

		if pick == "" {
			return nil
		}
		if err := st.edit(path.Key(pick)); err != nil {
			return err
		}
	}
}

// scalarInput carries one simple field's form binding plus its original
// state, so unchanged fields are not re-emitted (an untouched absent field
// must stay absent).
type scalarInput struct {
	name     string
	isBool   bool
	isChoice bool
	text     string
	origText string
	boolVal  bool
	origBool bool
}

func (st *formState) editScalarGroup(path formengine.Path, obj *formengine.Object) error {
	inputs := make([]*scalarInput, 0, len(obj.Simple))
	fields := make([]huh.Field, 0, len(obj.Simple))

	for _, f := range obj.Simple {
		scalar, ok := f.Node.(*formengine.Scalar)
		if !ok {
			continue
		}
		in := &scalarInput{name: f.Name}
		inputs = append(inputs, in)
		fields = append(fields, buildScalarField(scalar, fieldTitle(f), in))
	}

	if len(fields) == 0 {
		return nil
	}
	if err := huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).Run(); err != nil {
		return err
	}

	for _, in := range inputs {
		st.applyScalar(path.Key(in.name), in)
	}
	return nil
}

func (st *formState) editScalar(path formengine.Path) error {
	scalar := st.lookup(path).(*formengine.Scalar)

	in := &scalarInput{}
	field := buildScalarField(scalar, nodeTitle(scalar.Schema(), path), in)

	if err := huh.NewForm(huh.NewGroup(field)).WithTheme(Theme()).Run(); err != nil {
		return err
	}
	st.applyScalar(path, in)
	return nil
}

// buildScalarField picks the huh control for a scalar editor: closed choice,
// confirm toggle, multi-line text, or single-line input.
func buildScalarField(scalar *formengine.Scalar, title string, in *scalarInput) huh.Field {
	switch {
	case scalar.Closed():
		in.isChoice = true
		in.text = scalar.Text()
		in.origText = in.text
		choices := scalar.Choices()
		options := make([]huh.Option[string], 0, len(choices))
		for _, c := range choices {
			options = append(options, huh.NewOption(c.Label, c.Label))
		}
		return huh.NewSelect[string]().
			Title(title).
			Description(scalar.Schema().Description).
			Options(options...).
			Value(&in.text).
			Height(8)

	case scalar.Kind() == formengine.KindBoolean:
		in.isBool = true
		in.boolVal = scalar.Bool()
		in.origBool = in.boolVal
		return huh.NewConfirm().
			Title(title).
			Description(scalar.Schema().Description).
			Affirmative("Yes").
			Negative("No").
			Value(&in.boolVal)

	case scalar.Multiline():
		in.text = scalar.Text()
		in.origText = in.text
		return huh.NewText().
			Title(title).
			Description(scalar.Schema().Description).
			Value(&in.text)

	default:
		in.text = scalar.Text()
		in.origText = in.text
		return huh.NewInput().
			Title(title).
			Description(scalar.Schema().Description).
			Placeholder(placeholderFor(scalar)).
			Value(&in.text)
	}
}

// applyScalar pushes a changed input through a freshly rendered editor, so
// each emit builds on the root produced by the previous one.
func (st *formState) applyScalar(path formengine.Path, in *scalarInput) {
	if in.isBool {
		if in.boolVal == in.origBool {
			return
		}
		if scalar, ok := st.lookup(path).(*formengine.Scalar); ok {
			scalar.SetBool(in.boolVal)
		}
		return
	}
	if in.text == in.origText {
		return
	}
	scalar, ok := st.lookup(path).(*formengine.Scalar)
	if !ok {
		return
	}
	if in.isChoice {
		scalar.Select(in.text)
		return
	}
	scalar.SetText(in.text)
}

const (
	arrayOpAdd    = "__add__"
	arrayOpRemove = "__remove__"
	arrayOpDone   = "__done__"
)

func (st *formState) editArray(path formengine.Path) error {
	for {
		arr := st.lookup(path).(*formengine.Array)

		options := make([]huh.Option[string], 0, arr.Len()+3)
		for i, item := range arr.Items {
			options = append(options,
				huh.NewOption(fmt.Sprintf("[%d] %s", i, valueLabel(item.Value())), strconv.Itoa(i)))
		}
		options = append(options, huh.NewOption("Add item", arrayOpAdd))
		if arr.Len() > 0 {
			options = append(options, huh.NewOption("Remove item", arrayOpRemove))
		}
		options = append(options, huh.NewOption("Done", arrayOpDone))

		var pick string
		if err := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title(nodeTitle(arr.Schema(), path)).
					Options(options...).
					Value(&pick).
					Height(10),
			),
		).WithTheme(Theme()).Run(); err != nil {
			return err
		}

		switch pick {
		case arrayOpDone:
			return nil
		case arrayOpAdd:
			st.lookup(path).(*formengine.Array).Append()
		case arrayOpRemove:
			if err := st.removeArrayItem(path); err != nil {
				return err
			}
		default:
			index, err := strconv.Atoi(pick)
			if err != nil {
				return fmt.Errorf("unexpected selection %q", pick)
			}
			if err := st.edit(path.Index(index)); err != nil {
				return err
			}
		}
	}
}

func (st *formState) removeArrayItem(path formengine.Path) error {
	arr := st.lookup(path).(*formengine.Array)

	options := make([]huh.Option[string], 0, arr.Len()+1)
	for i, item := range arr.Items {
		options = append(options,
			huh.NewOption(fmt.Sprintf("[%d] %s", i, valueLabel(item.Value())), strconv.Itoa(i)))
	}
	options = append(options, huh.NewOption("Cancel", ""))

	var pick string
	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Remove which item?").
				Options(options...).
				Value(&pick).
				Height(10),
		),
	).WithTheme(Theme()).Run(); err != nil {
		return err
	}

	if pick == "" {
		return nil
	}
	index, err := strconv.Atoi(pick)
	if err != nil {
		return fmt.Errorf("unexpected selection %q", pick)
	}
	st.lookup(path).(*formengine.Array).Remove(index)
	return nil
}

func fieldTitle(f formengine.Field) string {
	title := f.Node.Schema().Title
	if title == "" {
		title = f.Name
	}
	if f.Required {
		title += " *"
	}
	return title
}

func sectionLabel(f formengine.Field) string {
	label := f.Node.Schema().Title
	if label == "" {
		label = f.Name
	}
	return label + "  " + valueLabel(f.Node.Value())
}

func nodeTitle(schema *jschema.Schema, path formengine.Path) string {
	if schema.Title != "" {
		return schema.Title
	}
	if p := path.String(); p != "" {
		return p
	}
	return "Configuration"
}

func placeholderFor(scalar *formengine.Scalar) string {
	switch scalar.Kind() {
	case formengine.KindInteger:
		return "e.g. 30"
	case formengine.KindNumber:
		return "e.g. 0.5"
	default:
		return ""
	}
}

// valueLabel summarizes a value for menu display.
func valueLabel(v any) string {
	switch t := v.(type) {
	case nil:
		return "(unset)"
	case map[string]any:
		return fmt.Sprintf("{%d fields}", len(t))
	case []any:
		return fmt.Sprintf("[%d items]", len(t))
	case string:
		if t == "" {
			return `""`
		}
		if len(t) > 32 {
			return t[:29] + "..."
		}
		return t
	default:
		return fmt.Sprint(t)
	}
}
