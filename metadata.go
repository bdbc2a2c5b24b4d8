package automap

import "reflect"

// idProperty is excluded from mapping unless the call opts in with
// WithIncludeId(true).
const idProperty = "Id"

// excludedProperties are never mapped, regardless of call options.
// Extending this set is a code change, not a parameter.
var excludedProperties = map[string]bool{
	"ETag": true,
}

// propertyInfo describes one mappable field of a struct type. The index
// path locates the field through flattened embedded structs.
type propertyInfo struct {
	index    []int
	name     string
	typ      reflect.Type
	canRead  bool
	canWrite bool
}

// propertySet is the cached result of introspecting one type under one
// filterKey. The slice preserves field-declaration order; byName serves
// intersection lookups.
type propertySet struct {
	properties []propertyInfo
	byName     map[string]*propertyInfo
}

// filterKey identifies one cached propertySet: the type plus the filter
// flags the call site resolved under. The read side and write side of a
// mapping call use distinct keys even when the resulting sets coincide.
type filterKey struct {
	typ       reflect.Type
	includeId bool
	canRead   bool
	canWrite  bool
}

// getOrBuildProperties returns the cached propertySet for key, computing
// and caching it on first use. Racing first lookups may both build the
// set; LoadOrStore keeps exactly one and all callers share it afterwards.
func (m *Mapper) getOrBuildProperties(key filterKey) *propertySet {
	if cached, ok := m.metadataCache.Load(key); ok {
		return cached.(*propertySet)
	}
	set := buildPropertySet(key)
	actual, _ := m.metadataCache.LoadOrStore(key, set)
	return actual.(*propertySet)
}

func buildPropertySet(key filterKey) *propertySet {
	fc := countProperties(key.typ)
	set := &propertySet{
		properties: make([]propertyInfo, 0, fc),
		byName:     make(map[string]*propertyInfo, fc),
	}
	appendProperties(key, key.typ, set, nil)
	for i := range set.properties {
		pi := &set.properties[i]
		set.byName[pi.name] = pi
	}
	return set
}

func appendProperties(key filterKey, typ reflect.Type, set *propertySet, prefix []int) {
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		idx := append(append([]int(nil), prefix...), i)
		if f.Anonymous {
			ft := f.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				appendProperties(key, ft, set, idx)
				continue
			}
		}
		if f.PkgPath != "" {
			continue
		}
		if excludedProperties[f.Name] {
			continue
		}
		if f.Name == idProperty && !key.includeId {
			continue
		}
		// Exported struct fields are both readable and writable, so the
		// canRead/canWrite filters never reject one; they are carried on
		// the key because read-side and write-side call sites resolve
		// under distinct flags.
		set.properties = append(set.properties, propertyInfo{
			index:    idx,
			name:     f.Name,
			typ:      f.Type,
			canRead:  true,
			canWrite: true,
		})
	}
}

func countProperties(typ reflect.Type) int {
	c := 0
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.PkgPath != "" {
			continue
		}
		if f.Anonymous {
			ft := f.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				c += countProperties(ft)
				continue
			}
		}
		c++
	}
	return c
}

// fieldByIndexAlloc walks an index path on an addressable struct value,
// allocating any nil embedded pointer it passes through so the terminal
// field can be set. Destination-side counterpart of safeFieldByIndex.
func fieldByIndexAlloc(val reflect.Value, index []int) reflect.Value {
	for i, x := range index {
		if i > 0 && val.Kind() == reflect.Ptr {
			if val.IsNil() {
				val.Set(reflect.New(val.Type().Elem()))
			}
			val = val.Elem()
		}
		val = val.Field(x)
	}
	return val
}

// safeFieldByIndex walks an index path, stopping without a value when a
// nil embedded pointer would have to be dereferenced.
func safeFieldByIndex(val reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && val.Kind() == reflect.Ptr {
			if val.IsNil() {
				return reflect.Value{}, false
			}
			val = val.Elem()
		}
		val = val.Field(x)
	}
	return val, true
}
