package deck

// CardInstance is one physical copy of a card definition inside a deck.
// Upgrades rewrite the instance's definition reference; the definition
// itself is never touched.
type CardInstance struct {
	// ID uniquely identifies this copy
	ID string

	// DefinitionID points at the card definition the copy currently plays as
	DefinitionID int

	// Upgraded is set once the copy has transformed. An upgraded copy
	// never transforms again.
	Upgraded bool
}

// Zone names one of the three piles a card instance can sit in
type Zone string

const (
	ZoneDraw    Zone = "draw"
	ZoneHand    Zone = "hand"
	ZoneDiscard Zone = "discard"
)

// Deck holds a fighter's card instances split across the three piles.
// A deck belongs to a single fight and is driven by one goroutine, so it
// carries no locking.
type Deck struct {
	Draw    []*CardInstance
	Hand    []*CardInstance
	Discard []*CardInstance
}

// New returns an empty deck
func New() *Deck {
	return &Deck{
		Draw:    make([]*CardInstance, 0),
		Hand:    make([]*CardInstance, 0),
		Discard: make([]*CardInstance, 0),
	}
}

// Add places an instance into the given zone. Unknown zones land in draw.
func (d *Deck) Add(zone Zone, inst *CardInstance) {
	switch zone {
	case ZoneHand:
		d.Hand = append(d.Hand, inst)
	case ZoneDiscard:
		d.Discard = append(d.Discard, inst)
	default:
		d.Draw = append(d.Draw, inst)
	}
}

// Instances returns every instance across all zones
func (d *Deck) Instances() []*CardInstance {
	all := make([]*CardInstance, 0, len(d.Draw)+len(d.Hand)+len(d.Discard))
	all = append(all, d.Draw...)
	all = append(all, d.Hand...)
	all = append(all, d.Discard...)
	return all
}

// FindInstance returns the instance with the given id, or nil
func (d *Deck) FindInstance(instanceID string) *CardInstance {
	for _, inst := range d.Instances() {
		if inst.ID == instanceID {
			return inst
		}
	}
	return nil
}

// CopiesOf returns every instance currently playing as the given definition
func (d *Deck) CopiesOf(definitionID int) []*CardInstance {
	var copies []*CardInstance
	for _, inst := range d.Instances() {
		if inst.DefinitionID == definitionID {
			copies = append(copies, inst)
		}
	}
	return copies
}

// Move relocates an instance to the given zone. Returns false when the
// instance is not in the deck.
func (d *Deck) Move(instanceID string, zone Zone) bool {
	inst := d.remove(instanceID)
	if inst == nil {
		return false
	}
	d.Add(zone, inst)
	return true
}

// ReplaceInstance rewrites one instance to play as a new definition and
// marks it upgraded. Already-upgraded instances are left alone. Returns
// whether the rewrite happened.
func (d *Deck) ReplaceInstance(instanceID string, newDefinitionID int) bool {
	inst := d.FindInstance(instanceID)
	if inst == nil || inst.Upgraded {
		return false
	}

	inst.DefinitionID = newDefinitionID
	inst.Upgraded = true
	return true
}

// ReplaceAllCopies rewrites every non-upgraded copy of a definition to
// play as a new definition. Returns the number of copies rewritten.
func (d *Deck) ReplaceAllCopies(definitionID, newDefinitionID int) int {
	replaced := 0
	for _, inst := range d.CopiesOf(definitionID) {
		if inst.Upgraded {
			continue
		}
		inst.DefinitionID = newDefinitionID
		inst.Upgraded = true
		replaced++
	}
	return replaced
}

func (d *Deck) remove(instanceID string) *CardInstance {
	piles := []*[]*CardInstance{&d.Draw, &d.Hand, &d.Discard}
	for _, pile := range piles {
		for i, inst := range *pile {
			if inst.ID == instanceID {
				*pile = append((*pile)[:i], (*pile)[i+1:]...)
				return inst
			}
		}
	}
	return nil
}
