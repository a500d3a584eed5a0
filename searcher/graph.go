package searcher

import (
	"fmt"
	"pursuit/game"
	"strconv"

	"github.com/awalterschulze/gographviz"
)

// Tracer observes the transitions explored by a search.
type Tracer interface {
	Root(key game.Key)
	Edge(from, to game.Key, action game.Action, maximizing bool, value float64)
}

type noTracer struct{}

func (noTracer) Root(game.Key)                                       {}
func (noTracer) Edge(game.Key, game.Key, game.Action, bool, float64) {}

type traceEdge struct {
	from, to int
	action   game.Action
	actor    side
	value    float64
}

// DotTracer records the state graph explored by the latest search and renders it as Graphviz DOT.
type DotTracer struct {
	ids   map[game.Key]int
	keys  []game.Key
	edges []traceEdge
}

func NewDotTracer() *DotTracer {
	return &DotTracer{ids: make(map[game.Key]int)}
}

// Root starts a new trace.
func (t *DotTracer) Root(key game.Key) {
	t.ids = make(map[game.Key]int)
	t.keys = nil
	t.edges = nil
	t.node(key)
}

func (t *DotTracer) Edge(from, to game.Key, action game.Action, maximizing bool, value float64) {
	actor := minimizer
	if maximizing {
		actor = maximizer
	}
	t.edges = append(t.edges, traceEdge{
		from:   t.node(from),
		to:     t.node(to),
		action: action,
		actor:  actor,
		value:  value,
	})
}

func (t *DotTracer) node(key game.Key) int {
	if id, ok := t.ids[key]; ok {
		return id
	}
	id := len(t.keys)
	t.ids[key] = id
	t.keys = append(t.keys, key)
	return id
}

func (t *DotTracer) Nodes() int { return len(t.keys) }
func (t *DotTracer) Edges() int { return len(t.edges) }

func (t *DotTracer) ToDot() string {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		panic(err)
	}
	if err := g.SetDir(true); err != nil {
		panic(err)
	}

	for id, key := range t.keys {
		label := fmt.Sprintf("P(%d,%d) G(%d,%d)", key.Pursuer.X, key.Pursuer.Y, key.Adversary.X, key.Adversary.Y)
		attrs := map[string]string{
			"shape": "box",
			"label": strconv.Quote(label),
		}
		if id == 0 {
			attrs["style"] = "bold"
		}
		if err := g.AddNode("G", nodeName(id), attrs); err != nil {
			panic(err)
		}
	}

	for _, e := range t.edges {
		label := fmt.Sprintf("%s %s %g", e.actor, e.action, e.value)
		attrs := map[string]string{"label": strconv.Quote(label)}
		if err := g.AddEdge(nodeName(e.from), nodeName(e.to), true, attrs); err != nil {
			panic(err)
		}
	}
	return g.String()
}

func nodeName(id int) string {
	return "n" + strconv.Itoa(id)
}
