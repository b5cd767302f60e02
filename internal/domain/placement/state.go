package placement

import "github.com/yigit/placement/internal/app/models"

// collection keeps entities by id and remembers insertion order
type collection[T any] struct {
	order []string
	items map[string]T
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: make(map[string]T)}
}

func (c *collection[T]) get(id string) (T, bool) {
	v, ok := c.items[id]
	return v, ok
}

func (c *collection[T]) put(id string, v T) {
	if _, ok := c.items[id]; !ok {
		c.order = append(c.order, id)
	}
	c.items[id] = v
}

func (c *collection[T]) remove(id string) {
	if _, ok := c.items[id]; !ok {
		return
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *collection[T]) len() int { return len(c.items) }

// each visits entities in insertion order until fn returns false
func (c *collection[T]) each(fn func(T) bool) {
	for _, id := range c.order {
		if !fn(c.items[id]) {
			return
		}
	}
}

type pairKey struct {
	studentID string
	driveID   string
}

// state is the full entity set. Pair indexes back the uniqueness invariants
// for applications and offers.
type state struct {
	students     *collection[models.Student]
	companies    *collection[models.Company]
	drives       *collection[models.Drive]
	applications *collection[models.Application]
	offers       *collection[models.OfferLetter]

	applicationByPair map[pairKey]string
	offerByPair       map[pairKey]string
}

func newState() *state {
	return &state{
		students:          newCollection[models.Student](),
		companies:         newCollection[models.Company](),
		drives:            newCollection[models.Drive](),
		applications:      newCollection[models.Application](),
		offers:            newCollection[models.OfferLetter](),
		applicationByPair: make(map[pairKey]string),
		offerByPair:       make(map[pairKey]string),
	}
}

func (st *state) putApplication(a models.Application) {
	st.applications.put(a.ID, a)
	st.applicationByPair[pairKey{a.StudentID, a.DriveID}] = a.ID
}

func (st *state) removeApplication(a models.Application) {
	st.applications.remove(a.ID)
	delete(st.applicationByPair, pairKey{a.StudentID, a.DriveID})
}

func (st *state) putOffer(o models.OfferLetter) {
	st.offers.put(o.ID, o)
	st.offerByPair[pairKey{o.StudentID, o.DriveID}] = o.ID
}

func (st *state) removeOffer(o models.OfferLetter) {
	st.offers.remove(o.ID)
	delete(st.offerByPair, pairKey{o.StudentID, o.DriveID})
}

func (st *state) applicationFor(studentID, driveID string) (models.Application, bool) {
	id, ok := st.applicationByPair[pairKey{studentID, driveID}]
	if !ok {
		return models.Application{}, false
	}
	return st.applications.get(id)
}

func (st *state) offerFor(studentID, driveID string) (models.OfferLetter, bool) {
	id, ok := st.offerByPair[pairKey{studentID, driveID}]
	if !ok {
		return models.OfferLetter{}, false
	}
	return st.offers.get(id)
}
