package voronoi

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderFilters(t *testing.T) {
	b := NewBuilder(image.Rect(0, 0, 100, 50))
	b.SetCandidateFilters(b.InBounds())
	b.SetSiteFilters(b.Distinct())

	id, ok := b.AddSite(10, 10)
	assert.True(t, ok)
	assert.Equal(t, 0, id)

	_, ok = b.AddSite(10, 10)
	assert.False(t, ok, "duplicate")

	_, ok = b.AddSite(100, 10)
	assert.False(t, ok, "max x is exclusive")

	_, ok = b.AddSite(-1, 10)
	assert.False(t, ok)

	id, ok = b.AddSite(99, 49)
	assert.True(t, ok)
	assert.Equal(t, 1, id)
	assert.Equal(t, 2, b.SiteCount())
}

func TestBuilderNoSites(t *testing.T) {
	_, err := NewBuilder(image.Rect(0, 0, 10, 10)).Voronoi()
	assert.Error(t, err)

	b := NewBuilder(image.Rect(0, 0, 0, 10))
	b.AddSite(0, 0)
	_, err = b.Voronoi()
	assert.Error(t, err)
}

func TestVoronoiTwoSites(t *testing.T) {
	b := NewBuilder(image.Rect(0, 0, 40, 20))
	b.AddSite(10, 10)
	b.AddSite(30, 10)

	v, err := b.Voronoi()
	require.NoError(t, err)
	require.Len(t, v.Sites(), 2)
	assert.Equal(t, image.Rect(0, 0, 40, 20), v.Bounds())

	left := v.SiteByID(0)
	assert.Equal(t, 10, left.X())
	assert.Equal(t, 10, left.Y())
	assert.Nil(t, v.SiteByID(2))
	assert.Nil(t, v.SiteByID(-1))

	assert.ElementsMatch(t,
		[]image.Point{image.Pt(0, 0), image.Pt(20, 0), image.Pt(20, 20), image.Pt(0, 20)},
		left.Vertices(),
	)
	assert.Len(t, left.Edges(), 4)
	assert.Equal(t, image.Rect(0, 0, 21, 21), left.Bounds())

	// edges join end to start
	edges := left.Edges()
	for i, e := range edges {
		assert.Equal(t, e[1], edges[(i+1)%len(edges)][0])
	}

	assert.Equal(t, 0, v.SiteFor(3, 3).ID())
	assert.Equal(t, 1, v.SiteFor(25, 19).ID())
	assert.Equal(t, 0, v.SiteFor(20, 10).ID(), "ties go to the lowest id")

	count := 0
	gen := left.AllContains()
	for p := gen.Next(); p != nil; p = gen.Next() {
		assert.True(t, p.In(v.Bounds()))
		assert.Less(t, p.X, 21)
		count++
	}
	assert.InDelta(t, 20*20, count, 25)
}

func TestVoronoiSingleSite(t *testing.T) {
	b := NewBuilder(image.Rect(0, 0, 10, 10))
	b.AddSite(3, 4)

	v, err := b.Voronoi()
	require.NoError(t, err)
	require.Len(t, v.Sites(), 1)
	assert.Len(t, v.Sites()[0].Vertices(), 4)
	assert.Equal(t, 0, v.SiteFor(9, 9).ID())
}

func TestPolygon(t *testing.T) {
	square := NewPolygon([]image.Point{image.Pt(0, 0), image.Pt(10, 0), image.Pt(10, 10), image.Pt(0, 10)})

	assert.True(t, square.IsClosed())
	assert.True(t, square.Contains(image.Pt(5, 5)))
	assert.True(t, square.Contains(image.Pt(1, 9)))
	assert.False(t, square.Contains(image.Pt(11, 5)))
	assert.False(t, square.Contains(image.Pt(5, -1)))
	assert.Equal(t, image.Rect(0, 0, 11, 11), square.Bounds())

	triangle := NewPolygon([]image.Point{image.Pt(0, 0), image.Pt(10, 0), image.Pt(0, 10)})
	assert.True(t, triangle.Contains(image.Pt(2, 2)))
	assert.False(t, triangle.Contains(image.Pt(8, 8)))

	line := NewPolygon([]image.Point{image.Pt(0, 0), image.Pt(10, 0)})
	assert.False(t, line.IsClosed())
	assert.False(t, line.Contains(image.Pt(5, 0)))

	assert.Equal(t, image.Rectangle{}, NewPolygon(nil).Bounds())
}
