package domain

// Thread is one owner's view of a two-party conversation. Threads are
// kept in insertion order per owner.
type Thread struct {
	Partner  string    `json:"partner"`
	Messages []Message `json:"messages"`
}

// Snapshot is the complete in-memory domain state. It is a single shared
// mutable structure with exactly one logical writer; every mutating
// operation works on the same value and flushes it as a unit.
//
// For any pair (a, b), a's thread with b and b's thread with a are two
// independently stored sequences that must stay identical in content and
// order.
type Snapshot struct {
	Accounts map[string]*Account  `json:"accounts"`
	Offers   []*Offer             `json:"offers"`
	Chats    map[string][]*Thread `json:"chats"`
}

// NewSnapshot returns an empty snapshot with all collections allocated.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Accounts: make(map[string]*Account),
		Offers:   []*Offer{},
		Chats:    make(map[string][]*Thread),
	}
}

// Account looks up an account by username. Absent lookups are not errors;
// callers treat ok=false as a no-op.
func (s *Snapshot) Account(username string) (*Account, bool) {
	a, ok := s.Accounts[username]
	return a, ok
}

// Authenticate verifies a username/password pair by plain case-sensitive
// equality, no normalization. Both an absent username and a mismatching
// password report the same error.
func (s *Snapshot) Authenticate(username, password string) error {
	a, ok := s.Accounts[username]
	if !ok || a.Password != password {
		return ErrInvalidCredentials
	}
	return nil
}

// Offer looks up an offer by id.
func (s *Snapshot) Offer(id int64) (*Offer, bool) {
	for _, o := range s.Offers {
		if o.ID == id {
			return o, true
		}
	}
	return nil, false
}

// FindThread returns owner's thread with partner.
func (s *Snapshot) FindThread(owner, partner string) (*Thread, bool) {
	for _, t := range s.Chats[owner] {
		if t.Partner == partner {
			return t, true
		}
	}
	return nil, false
}

// EnsureThread returns owner's thread with partner, creating an empty one
// at the end of owner's thread list when absent.
func (s *Snapshot) EnsureThread(owner, partner string) *Thread {
	if t, ok := s.FindThread(owner, partner); ok {
		return t
	}
	t := &Thread{Partner: partner, Messages: []Message{}}
	s.Chats[owner] = append(s.Chats[owner], t)
	return t
}

// MaxOfferID returns the largest offer id in the snapshot, or 0 when the
// collection is empty. Used to re-seed the id sequence after a load.
func (s *Snapshot) MaxOfferID() int64 {
	var max int64
	for _, o := range s.Offers {
		if o.ID > max {
			max = o.ID
		}
	}
	return max
}

// MaxMessageTimestamp returns the largest message timestamp in any thread,
// or 0. Used to re-seed the message clock after a load.
func (s *Snapshot) MaxMessageTimestamp() int64 {
	var max int64
	for _, threads := range s.Chats {
		for _, t := range threads {
			for _, m := range t.Messages {
				if m.Timestamp > max {
					max = m.Timestamp
				}
			}
		}
	}
	return max
}

// Normalize repairs a snapshot read from an older store generation:
// missing profile defaults are filled in, nil collections are allocated,
// and owned-offer ids that no longer resolve to an offer authored by the
// account are pruned.
func (s *Snapshot) Normalize() {
	if s.Accounts == nil {
		s.Accounts = make(map[string]*Account)
	}
	if s.Offers == nil {
		s.Offers = []*Offer{}
	}
	if s.Chats == nil {
		s.Chats = make(map[string][]*Thread)
	}
	for name, a := range s.Accounts {
		a.Username = name
		if a.Profile.Slogan == "" {
			a.Profile.Slogan = DefaultSlogan
		}
		if a.Profile.PhotoURL == "" {
			a.Profile.PhotoURL = DefaultPhotoURL
		}
		if a.Profile.Rank == "" {
			a.Profile.Rank = DefaultRank
		}
		if a.Profile.Ratings == nil {
			a.Profile.Ratings = []float64{}
		}
		if a.Notifications == nil {
			a.Notifications = []Notification{}
		}
		kept := a.OfferIDs[:0]
		for _, id := range a.OfferIDs {
			if o, ok := s.Offer(id); ok && o.Author == name {
				kept = append(kept, id)
			}
		}
		a.OfferIDs = kept
	}
}
