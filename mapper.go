package automap

import (
	"reflect"
	"sync"

	"github.com/Station-Manager/errors"
)

// MapOption configures a single mapping call.
type MapOption func(*mapConfig)

type mapConfig struct {
	includeId bool
}

// WithIncludeId opts a call in to copying fields named "Id", which are
// skipped by default.
func WithIncludeId(v bool) MapOption { return func(c *mapConfig) { c.includeId = v } }

// Mapper copies same-named field values between struct instances. It owns
// the field-set cache, so isolated Mapper instances have isolated caches.
// The zero value is not usable; construct with New.
//
// A Mapper is intended to be created once and reused: the cache is lazily
// populated per (type, filter) combination, never evicted, and valid for
// the life of the Mapper because type shapes do not change at runtime.
type Mapper struct {
	metadataCache sync.Map // map[filterKey]*propertySet
}

// New creates a Mapper with an empty field-set cache.
func New() *Mapper { return &Mapper{} }

// WarmMetadata pre-builds cached field sets for provided example values or
// types (pass either a value or a *T), covering both the default and the
// include-Id filters.
func (m *Mapper) WarmMetadata(examples ...any) {
	for _, e := range examples {
		if e == nil {
			continue
		}
		t := reflect.TypeOf(e)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			continue
		}
		for _, includeId := range []bool{false, true} {
			_ = m.getOrBuildProperties(filterKey{typ: t, includeId: includeId, canRead: true})
			_ = m.getOrBuildProperties(filterKey{typ: t, includeId: includeId, canWrite: true})
		}
	}
}

// MapInto copies matching field values from src onto the existing dst
// instance. src may be a struct or a non-nil pointer to one; dst must be a
// non-nil pointer to a struct. dst is validated before any field is
// written, so a failed precondition leaves it untouched.
func (m *Mapper) MapInto(src, dst any, opts ...MapOption) error {
	const op errors.Op = "automap.MapInto"

	cfg := mapConfig{}
	for _, f := range opts {
		f(&cfg)
	}

	srcVal, err := sourceValue(op, src)
	if err != nil {
		return err
	}
	dstVal, err := destinationValue(op, dst)
	if err != nil {
		return err
	}

	return m.copyProperties(op, dstVal, srcVal, cfg)
}

// MapFrom is MapInto with the argument roles swapped, for call sites that
// read better with the destination first. dst.MapFrom-style usage:
//
//	err := mapper.MapFrom(&summary, &entity)
//
// Behavior is identical to MapInto(src, dst, opts...).
func (m *Mapper) MapFrom(dst, src any, opts ...MapOption) error {
	return m.MapInto(src, dst, opts...)
}

// MapNew default-constructs an instance of dstType, copies matching field
// values from src onto it, and returns a pointer to it. dstType must be a
// struct type.
func (m *Mapper) MapNew(src any, dstType reflect.Type, opts ...MapOption) (any, error) {
	const op errors.Op = "automap.MapNew"

	cfg := mapConfig{}
	for _, f := range opts {
		f(&cfg)
	}

	if dstType == nil || dstType.Kind() != reflect.Struct {
		return nil, errors.New(op).Msg(ErrMsgUnconstructable)
	}
	srcVal, err := sourceValue(op, src)
	if err != nil {
		return nil, err
	}

	dstPtr := reflect.New(dstType)
	if err := m.copyProperties(op, dstPtr.Elem(), srcVal, cfg); err != nil {
		return nil, err
	}
	return dstPtr.Interface(), nil
}

// copyProperties is the shared copy routine behind every entry point. It
// resolves the source's readable field set and the destination's writable
// field set under cfg, then assigns each destination field whose name also
// appears on the source. One-sided names are skipped, as are fields behind
// a nil embedded pointer on the source; on the destination, nil embedded
// pointers are allocated so the field can be written. A matched field whose
// source value is not assignable to the destination field's type fails the
// call; fields assigned before it keep their new values.
func (m *Mapper) copyProperties(op errors.Op, dstVal, srcVal reflect.Value, cfg mapConfig) error {
	srcSet := m.getOrBuildProperties(filterKey{typ: srcVal.Type(), includeId: cfg.includeId, canRead: true})
	dstSet := m.getOrBuildProperties(filterKey{typ: dstVal.Type(), includeId: cfg.includeId, canWrite: true})

	for i := range dstSet.properties {
		dp := &dstSet.properties[i]
		if !dp.canWrite {
			continue
		}
		sp, found := srcSet.byName[dp.name]
		if !found || !sp.canRead {
			continue
		}
		srcField, ok := safeFieldByIndex(srcVal, sp.index)
		if !ok {
			continue
		}
		dstField := fieldByIndexAlloc(dstVal, dp.index)
		if !srcField.Type().AssignableTo(dstField.Type()) {
			return errors.New(op).Errorf("Property %q: value of type %s is not assignable to %s",
				dp.name, srcField.Type(), dstField.Type())
		}
		dstField.Set(srcField)
	}
	return nil
}

func sourceValue(op errors.Op, src any) (reflect.Value, error) {
	if src == nil {
		return reflect.Value{}, errors.New(op).Msg(ErrMsgNilSource)
	}
	v := reflect.ValueOf(src)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}, errors.New(op).Msg(ErrMsgNilSource)
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, errors.New(op).Msg(ErrMsgSourceKind)
	}
	return v, nil
}

func destinationValue(op errors.Op, dst any) (reflect.Value, error) {
	if dst == nil {
		return reflect.Value{}, errors.New(op).Msg(ErrMsgNilDestination)
	}
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Ptr {
		return reflect.Value{}, errors.New(op).Msg(ErrMsgDestKind)
	}
	if v.IsNil() {
		return reflect.Value{}, errors.New(op).Msg(ErrMsgNilDestination)
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, errors.New(op).Msg(ErrMsgDestKind)
	}
	return v, nil
}
