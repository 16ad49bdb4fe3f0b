package repository

import (
	"cinema-manager/internal/models"
)

type TicketRepository struct {
	byID  map[string]*models.Ticket
	order []*models.Ticket
}

func NewTicketRepository() *TicketRepository {
	return &TicketRepository{byID: make(map[string]*models.Ticket)}
}

func (r *TicketRepository) Add(t *models.Ticket) {
	if old, ok := r.byID[t.ID]; ok {
		for i, e := range r.order {
			if e == old {
				r.order[i] = t
				break
			}
		}
		r.byID[t.ID] = t
		return
	}
	r.byID[t.ID] = t
	r.order = append(r.order, t)
}

func (r *TicketRepository) GetByID(id string) (*models.Ticket, bool) {
	t, ok := r.byID[id]
	return t, ok
}

func (r *TicketRepository) GetAll() []*models.Ticket {
	out := make([]*models.Ticket, len(r.order))
	copy(out, r.order)
	return out
}

// RemoveByID deletes the ticket and returns it for refund bookkeeping,
// or nil when no ticket has that ID.
func (r *TicketRepository) RemoveByID(id string) *models.Ticket {
	t, ok := r.byID[id]
	if !ok {
		return nil
	}
	delete(r.byID, id)
	for i, e := range r.order {
		if e == t {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return t
}
