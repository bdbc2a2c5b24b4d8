package automap

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_CachedSetIsReused(t *testing.T) {
	mapper := New()

	key := filterKey{typ: reflect.TypeOf(SourceBasic{}), canRead: true}
	first := mapper.getOrBuildProperties(key)
	second := mapper.getOrBuildProperties(key)

	assert.Same(t, first, second, "same filter key must return the identical cached set")
}

func TestMetadata_DistinctFilterKeys(t *testing.T) {
	mapper := New()

	typ := reflect.TypeOf(SourceResource{})
	readSide := mapper.getOrBuildProperties(filterKey{typ: typ, canRead: true})
	writeSide := mapper.getOrBuildProperties(filterKey{typ: typ, canWrite: true})
	withId := mapper.getOrBuildProperties(filterKey{typ: typ, includeId: true, canRead: true})

	assert.NotSame(t, readSide, writeSide)
	assert.NotSame(t, readSide, withId)
}

func TestMetadata_ExclusionsApplied(t *testing.T) {
	mapper := New()
	typ := reflect.TypeOf(SourceResource{})

	set := mapper.getOrBuildProperties(filterKey{typ: typ, canRead: true})
	assert.NotContains(t, set.byName, "Id")
	assert.NotContains(t, set.byName, "ETag")
	assert.Contains(t, set.byName, "Name")

	withId := mapper.getOrBuildProperties(filterKey{typ: typ, includeId: true, canRead: true})
	assert.Contains(t, withId.byName, "Id")
	assert.NotContains(t, withId.byName, "ETag")
}

func TestMetadata_OrderFollowsDeclaration(t *testing.T) {
	mapper := New()

	set := mapper.getOrBuildProperties(filterKey{typ: reflect.TypeOf(SourceBasic{}), canWrite: true})

	names := make([]string, 0, len(set.properties))
	for i := range set.properties {
		names = append(names, set.properties[i].name)
	}
	assert.Equal(t, []string{"Name", "Age", "Email"}, names)
}

// The cache must never change observable mapping behavior, only cost.
func TestMetadata_CacheTransparency(t *testing.T) {
	src := &SourceResource{Id: 5, ETag: "e", Name: "n"}

	cold := New()
	warmed := New()
	warmed.WarmMetadata(SourceResource{}, DestResource{})
	for i := 0; i < 3; i++ {
		scratch := &DestResource{}
		require.NoError(t, warmed.MapInto(src, scratch))
	}

	fromCold := &DestResource{}
	require.NoError(t, cold.MapInto(src, fromCold))
	fromWarm := &DestResource{}
	require.NoError(t, warmed.MapInto(src, fromWarm))

	assert.Equal(t, fromCold, fromWarm)
}

func TestMetadata_WarmMetadataPopulatesCache(t *testing.T) {
	mapper := New()

	mapper.WarmMetadata(SourceBasic{}, &DestBasic{}, nil, 42)

	entries := 0
	mapper.metadataCache.Range(func(_, _ any) bool {
		entries++
		return true
	})
	// Two struct types, two includeId states, read and write side each.
	assert.Equal(t, 8, entries)
}
