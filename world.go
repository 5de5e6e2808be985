package asteroids

import "go.uber.org/zap"

// Handle names an active entity. The low 32 bits are a slot index and the
// high 32 bits its generation, bumped when the slot is freed so stale handles
// stop resolving.
type Handle uint64

func newHandle(index, generation uint32) Handle {
	return Handle(uint64(generation)<<32 | uint64(index))
}

func (h Handle) Index() uint32      { return uint32(h) }
func (h Handle) Generation() uint32 { return uint32(h >> 32) }

type handlePool struct {
	generations []uint32
	free        []uint32
}

func (p *handlePool) create() Handle {
	if n := len(p.free); n > 0 {
		idx := p.free[n-1]
		p.free = p.free[:n-1]
		return newHandle(idx, p.generations[idx])
	}
	idx := uint32(len(p.generations))
	p.generations = append(p.generations, 0)
	return newHandle(idx, 0)
}

func (p *handlePool) release(h Handle) {
	idx := h.Index()
	if int(idx) >= len(p.generations) || p.generations[idx] != h.Generation() {
		return
	}
	p.generations[idx]++
	p.free = append(p.free, idx)
}

type slot struct {
	handle Handle
	entity Entity
}

// World owns every entity of a play session. Entities added during a frame
// wait in a pending buffer and join the simulation when the next Update
// starts.
type World struct {
	Screen Screen

	log      *zap.Logger
	pool     handlePool
	entities []slot
	byHandle map[Handle]Entity
	pending  []Entity
}

func NewWorld(screen Screen, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	return &World{
		Screen:   screen,
		log:      log.Named("world"),
		entities: make([]slot, 0, 64),
		byHandle: make(map[Handle]Entity, 64),
		pending:  make([]Entity, 0, 16),
	}
}

// Add queues e for the next frame.
func (w *World) Add(e Entity) {
	w.pending = append(w.pending, e)
}

// Size counts active and pending entities.
func (w *World) Size() int {
	return len(w.entities) + len(w.pending)
}

func (w *World) Active() int {
	return len(w.entities)
}

func (w *World) Pending() int {
	return len(w.pending)
}

// Entities returns the active entities in insertion order.
func (w *World) Entities() []Entity {
	result := make([]Entity, len(w.entities))
	for i, s := range w.entities {
		result[i] = s.entity
	}
	return result
}

// Lookup resolves a handle. It fails once the entity has been removed.
func (w *World) Lookup(h Handle) (Entity, bool) {
	e, ok := w.byHandle[h]
	return e, ok
}

// Clear drops every active entity. Pending ones are kept.
func (w *World) Clear() {
	for _, s := range w.entities {
		w.pool.release(s.handle)
		delete(w.byHandle, s.handle)
	}
	w.entities = w.entities[:0]
}

// Update advances the simulation by dt seconds and returns the points earned
// from meteors removed this frame.
func (w *World) Update(dt float64) uint32 {
	w.flush()

	actions := make([]Action, 0, 4)
	for _, s := range w.entities {
		if action := s.entity.Update(dt); action != nil {
			actions = append(actions, action)
		}
	}
	for _, action := range actions {
		action(w)
	}

	w.wrap()

	for _, h := range w.collide() {
		e, ok := w.Lookup(h)
		if !ok {
			continue
		}
		if action := e.Destroy(); action != nil {
			action(w)
		}
	}

	return w.sweep()
}

func (w *World) flush() {
	if len(w.pending) == 0 {
		return
	}
	for _, e := range w.pending {
		h := w.pool.create()
		w.entities = append(w.entities, slot{handle: h, entity: e})
		w.byHandle[h] = e
	}
	w.pending = w.pending[:0]
}

// wrap moves entities that left the screen to the opposite edge.
func (w *World) wrap() {
	for _, s := range w.entities {
		b := s.entity.Body()

		if b.Position.X < -b.Width() {
			b.Position.X = w.Screen.Width
		} else if b.Position.X > w.Screen.Width {
			b.Position.X = -b.Width()
		}

		if b.Position.Y < -b.Height() {
			b.Position.Y = w.Screen.Height
		} else if b.Position.Y > w.Screen.Height {
			b.Position.Y = -b.Height()
		}
	}
}

// collide tests every unordered pair both ways and returns the handle of each
// entity that reacted, once per pair it reacted in.
func (w *World) collide() []Handle {
	var hits []Handle
	for i := 0; i < len(w.entities); i++ {
		a := w.entities[i]
		for j := i + 1; j < len(w.entities); j++ {
			b := w.entities[j]
			if a.entity.Body().Alive() && a.entity.Collides(b.entity) {
				hits = append(hits, a.handle)
			}
			if b.entity.Body().Alive() && b.entity.Collides(a.entity) {
				hits = append(hits, b.handle)
			}
		}
	}
	return hits
}

// sweep removes dead entities and totals the score of dead meteors.
func (w *World) sweep() uint32 {
	var points uint32
	kept := w.entities[:0]
	for _, s := range w.entities {
		if s.entity.Body().Alive() {
			kept = append(kept, s)
			continue
		}
		if kind := s.entity.Kind(); kind.Tag == KindMeteor {
			points += kind.Score
		}
		w.pool.release(s.handle)
		delete(w.byHandle, s.handle)
	}
	for i := len(kept); i < len(w.entities); i++ {
		w.entities[i] = slot{}
	}
	w.entities = kept

	if points > 0 {
		w.log.Debug("meteors cleared", zap.Uint32("points", points), zap.Int("remaining", len(w.entities)))
	}
	return points
}

// Draw draws active entities back to front in insertion order.
func (w *World) Draw(r Renderer) {
	for _, s := range w.entities {
		s.entity.Draw(r)
	}
}
