package repos

import (
	"ventapos/internal/pos"

	"github.com/jmoiron/sqlx"
)

type SaleRepo struct{ db *sqlx.DB }

func NewSaleRepo(db *sqlx.DB) *SaleRepo { return &SaleRepo{db: db} }

// Record stores the confirmed sale for the local audit trail. The document
// itself already went to the submission queue; this row is what the shop can
// query without the broker.
func (r *SaleRepo) Record(id, sessionID string, doc pos.Document) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
		INSERT INTO sales(id,session_id,doc_type,issue_date,payment_method,delivery_method,
		  recipient_rut,recipient_name,net,tax,total)
		VALUES(?,?,?,?,?,?,?,?,?,?,?)
	`, id, sessionID, doc.Header.DocType, doc.Header.IssueDate,
		string(doc.Header.Payment), string(doc.Header.Delivery),
		doc.Header.Recipient.RUT, doc.Header.Recipient.Name,
		doc.Totals.Net, doc.Totals.Tax, doc.Totals.Total); err != nil {
		return err
	}

	for _, it := range doc.Items {
		if _, err := tx.Exec(`
			INSERT INTO sale_items(sale_id,line_no,product_id,name,qty,unit_price,line_total)
			VALUES(?,?,?,?,?,?,?)
		`, id, it.Line, it.ProductID, it.Name, it.Quantity, it.UnitPrice, it.LineTotal); err != nil {
			return err
		}
	}

	return tx.Commit()
}

type SaleRow struct {
	ID            string `db:"id"`
	DocType       int    `db:"doc_type"`
	IssueDate     string `db:"issue_date"`
	Payment       string `db:"payment_method"`
	RecipientRUT  string `db:"recipient_rut"`
	RecipientName string `db:"recipient_name"`
	Net           string `db:"net"`
	Tax           string `db:"tax"`
	Total         string `db:"total"`
	Status        string `db:"status"`
	CreatedAt     string `db:"created_at"`
}

func (r *SaleRepo) Get(id string) (SaleRow, error) {
	var s SaleRow
	err := r.db.Get(&s, `
	  SELECT id,doc_type,issue_date,payment_method,recipient_rut,recipient_name,
	         net,tax,total,status,created_at
	  FROM sales WHERE id = ?`, id)
	return s, err
}

func (r *SaleRepo) ListRecent(limit int) ([]SaleRow, error) {
	if limit <= 0 {
		limit = 50
	}
	out := []SaleRow{}
	err := r.db.Select(&out, `
	  SELECT id,doc_type,issue_date,payment_method,recipient_rut,recipient_name,
	         net,tax,total,status,created_at
	  FROM sales ORDER BY created_at DESC LIMIT ?`, limit)
	return out, err
}
