// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package ahbsim

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// Updater is the interface that custom components built using reflection must implement.
// See MakePart.
//
type Updater interface {
	Update(*Circuit)
}

// MakePart wraps an Updater into a custom component.
// Input/output pins are identified by field tags.
//
// The field tag must be `hw:"in"` or `hw:"out"` to identify input and output
// pins. By default, the pin name is the field name in lowercase. A specific
// field name can be forced by adding it in the tag: `hw:"in,pin_name"`.
//
// Pins must be exported int fields and buses must be arrays of int. Each
// mounted instance starts as a copy of t, which lets t carry configuration in
// other fields. A nil pointer can be used when no configuration is needed:
//
//	spec := MakePart((*myPart)(nil))
//
// The pointer to each copy must implement Updater.
//
func MakePart(t Updater) *PartSpec {
	v := reflect.ValueOf(t)
	typ := v.Type()
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
		if v.IsNil() {
			v = reflect.Zero(typ)
		} else {
			v = v.Elem()
		}
	}
	if k := typ.Kind(); k != reflect.Struct {
		panic(errors.Errorf("unsupported type %q for %q", k, typ.Name()))
	}

	sp := &PartSpec{
		Name: typ.Name(),
	}

	for _, f := range tagged(typ) {
		var names []string
		if f.bus > 0 {
			for i := 0; i < f.bus; i++ {
				names = append(names, BusPinName(f.pin, i))
			}
		} else {
			names = []string{f.pin}
		}
		if f.input {
			sp.Inputs = append(sp.Inputs, names...)
		} else {
			sp.Outputs = append(sp.Outputs, names...)
		}
	}

	tmpl := reflect.New(typ).Elem()
	tmpl.Set(v)
	sp.Mount = mountPart(tmpl)
	return sp
}

type pinField struct {
	index int
	pin   string
	input bool
	bus   int // bus width, 0 for a single pin
}

func tagged(typ reflect.Type) []pinField {
	var fields []pinField

	n := typ.NumField()
	for i := 0; i < n; i++ {
		f := typ.Field(i)
		tag, ok := f.Tag.Lookup("hw")
		if !ok {
			continue
		}
		pf := pinField{index: i, pin: strings.ToLower(f.Name)}
		tv := strings.Split(tag, ",")
		if len(tv) > 2 {
			panic(errors.Errorf("unsupported tag %q for field %q in %q", tag, f.Name, typ.Name()))
		}
		if len(tv) == 2 && tv[1] != "" {
			pf.pin = tv[1]
		}
		switch tv[0] {
		case "in":
			pf.input = true
		case "out":
		default:
			panic(errors.Errorf("unsupported tag %q for field %q in %q", tag, f.Name, typ.Name()))
		}
		if f.PkgPath != "" {
			panic(errors.Errorf("pin field %q in %q is not exported", f.Name, typ.Name()))
		}

		ft := f.Type
		if k := ft.Kind(); k == reflect.Array && ft.Elem().Kind() == reflect.Int {
			pf.bus = ft.Len()
		} else if k != reflect.Int {
			panic(errors.Errorf("unsupported type %q for field %q in %q", k, f.Name, typ.Name()))
		}
		fields = append(fields, pf)
	}
	return fields
}

func mountPart(tmpl reflect.Value) MountFn {
	fields := tagged(tmpl.Type())
	return func(s *Socket) []Component {
		v := reflect.New(tmpl.Type())
		e := v.Elem()
		e.Set(tmpl)
		for _, f := range fields {
			fv := e.Field(f.index)
			if f.bus > 0 {
				for i := 0; i < f.bus; i++ {
					fv.Index(i).SetInt(int64(s.Pin(BusPinName(f.pin, i))))
				}
			} else {
				fv.SetInt(int64(s.Pin(f.pin)))
			}
		}

		comp := v.Interface().(Updater)
		return []Component{comp.Update}
	}
}
