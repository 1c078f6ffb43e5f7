package inventory

// Database is the in-memory copy of the inventory file for a single operation.
// Records keep file order; the index points at the first record for each key.
type Database struct {
	header  Header
	records []Record
	index   map[Key]int
}

// NewDatabase builds a Database from loaded rows.
func NewDatabase(header Header, records []Record) *Database {
	db := &Database{
		header:  append(Header(nil), header...),
		records: append([]Record(nil), records...),
	}
	db.reindex()
	return db
}

func (db *Database) reindex() {
	db.index = make(map[Key]int, len(db.records))
	for i, r := range db.records {
		if _, seen := db.index[r.Key()]; !seen {
			db.index[r.Key()] = i
		}
	}
}

// Header returns a copy of the column names.
func (db *Database) Header() Header {
	return append(Header(nil), db.header...)
}

// Records returns a snapshot of the records in file order.
func (db *Database) Records() []Record {
	return append([]Record(nil), db.records...)
}

// Len returns the number of records.
func (db *Database) Len() int {
	return len(db.records)
}

// Find returns the record for name and colour.
func (db *Database) Find(name, colour string) (Record, bool) {
	i, ok := db.index[Key{Name: name, Colour: colour}]
	if !ok {
		return Record{}, false
	}
	return db.records[i], true
}

// Add appends a record after checking CanAddRecord.
func (db *Database) Add(r Record) error {
	_, exists := db.index[r.Key()]
	if err := CanAddRecord(AddRecordContext{Record: r, KeyExists: exists}).Error(); err != nil {
		return err
	}

	db.records = append(db.records, r)
	db.index[r.Key()] = len(db.records) - 1
	return nil
}

// Remove deletes the first record matching name and colour and returns it.
func (db *Database) Remove(name, colour string) (Record, error) {
	key := Key{Name: name, Colour: colour}
	i, ok := db.index[key]
	if !ok {
		return Record{}, GuardResult{Reason: key.String(), Kind: ErrNotFound}.Error()
	}

	removed := db.records[i]
	db.records = append(db.records[:i], db.records[i+1:]...)
	db.reindex()
	return removed, nil
}

// SetPrice replaces the price of a record and returns the record as it was before.
func (db *Database) SetPrice(name, colour string, price int) (Record, error) {
	key := Key{Name: name, Colour: colour}
	i, ok := db.index[key]
	if err := CanSetPrice(SetPriceContext{Key: key, Exists: ok, NewPrice: price}).Error(); err != nil {
		return Record{}, err
	}

	old := db.records[i]
	db.records[i].Price = price
	return old, nil
}

// Purchase takes amount items out of stock and returns the record as it was before.
func (db *Database) Purchase(name, colour string, amount int) (Record, error) {
	key := Key{Name: name, Colour: colour}
	i, ok := db.index[key]

	inStock := 0
	if ok {
		inStock = db.records[i].Quantity
	}
	guard := CanPurchase(PurchaseContext{Key: key, Exists: ok, InStock: inStock, Amount: amount})
	if err := guard.Error(); err != nil {
		return Record{}, err
	}

	old := db.records[i]
	db.records[i].Quantity -= amount
	return old, nil
}

// ItemsByColour returns the names of all records with the given colour.
func (db *Database) ItemsByColour(colour string) []string {
	var names []string
	for _, r := range db.records {
		if r.Colour == colour {
			names = append(names, r.Name)
		}
	}
	return names
}

// ColoursOfItem returns every colour the named item comes in.
func (db *Database) ColoursOfItem(name string) []string {
	var colours []string
	for _, r := range db.records {
		if r.Name == name {
			colours = append(colours, r.Colour)
		}
	}
	return colours
}

// LowStock returns "colour name" labels for records with quantity below threshold.
func (db *Database) LowStock(threshold int) []string {
	var labels []string
	for _, r := range db.records {
		if r.Quantity < threshold {
			labels = append(labels, r.Label())
		}
	}
	return labels
}
