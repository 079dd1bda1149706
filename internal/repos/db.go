package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline data if DB is empty (products/customers)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	// Ensure operators exist (idempotent; safe to run every start)
	if err := seedUsers(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Catalog. price/stock stay NULLable: entries with incomplete fiscal or
-- inventory data are listed but cannot be sold.
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  category TEXT NOT NULL,
  price NUMERIC NULL CHECK (price IS NULL OR price >= 0),
  stock INTEGER NULL CHECK (stock IS NULL OR stock >= 0),
  image_url TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_name     ON products(LOWER(name));

-- Customers
CREATE TABLE IF NOT EXISTS customers(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Recorded sales (local audit trail; submission goes through the publisher)
CREATE TABLE IF NOT EXISTS sales(
  id TEXT PRIMARY KEY,
  session_id TEXT,
  doc_type INTEGER NOT NULL,
  issue_date TEXT NOT NULL,
  payment_method TEXT NOT NULL,
  delivery_method TEXT NOT NULL,
  recipient_rut TEXT NOT NULL,
  recipient_name TEXT,
  net NUMERIC NOT NULL,
  tax NUMERIC NOT NULL,
  total NUMERIC NOT NULL,
  status TEXT NOT NULL DEFAULT 'SUBMITTED',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_sales_created_at ON sales(created_at);

CREATE TABLE IF NOT EXISTS sale_items(
  sale_id TEXT NOT NULL REFERENCES sales(id) ON DELETE CASCADE,
  line_no INTEGER NOT NULL,
  product_id TEXT NOT NULL,
  name TEXT NOT NULL,
  qty INTEGER NOT NULL CHECK (qty >= 1),
  unit_price NUMERIC NOT NULL,
  line_total NUMERIC NOT NULL,
  PRIMARY KEY (sale_id, line_no)
);

-- Operators & bearer sessions
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('OPERATOR','ADMIN')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- the bearer token value
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo catalog/customers")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO products(id,name,category,price,stock,image_url) VALUES
	  ('arroz-1kg','Arroz Grado 1 1kg','Abarrotes',1190,24,'products/arroz-1kg.jpg'),
	  ('aceite-1l','Aceite Maravilla 1L','Abarrotes',3490,12,''),
	  ('harina-1kg','Harina sin Polvos 1kg','Abarrotes',1290,1,''),
	  ('cafe-170g','Café Instantáneo 170g','Desayuno',6990,NULL,''),
	  ('te-caja','Té Ceilán 20 bolsas','Desayuno',NULL,30,'')`)

	tx.MustExec(`INSERT INTO customers(id,name) VALUES
	  ('c-almacen-sur','Almacén El Sur Ltda.'),
	  ('c-maria','María Contreras'),
	  ('c-distr-andes','Distribuidora Los Andes SpA')`)

	return tx.Commit()
}

// seedUsers ensures one OPERATOR and one ADMIN exist (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		ID, Email, Name, Role, Hash string
	}
	mk := func(id, email, name, role, raw string) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return u{ID: id, Email: email, Name: name, Role: role, Hash: string(h)}
	}

	users := []u{
		mk("u-caja1", "caja1@ventapos.test", "Caja 1", "OPERATOR", "Passw0rd!"),
		mk("u-admin", "admin@ventapos.test", "Admin", "ADMIN", "Passw0rd!"),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(id,email,name,password_hash,role)
			VALUES(?,?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`, x.ID, x.Email, x.Name, x.Hash, x.Role); err != nil {
			return err
		}
	}

	return tx.Commit()
}
