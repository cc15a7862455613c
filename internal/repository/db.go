package repository

// batchSize bounds the number of statements queued in one pgx.Batch.
const batchSize = 1000

// schema is the DDL for seeded datasets. Tables are replaced wholesale on
// every seed, mirroring the in-memory dataset slot.
const schema = `
	CREATE TABLE IF NOT EXISTS generations (
		id UUID PRIMARY KEY,
		generated_at TIMESTAMPTZ NOT NULL,
		user_count INTEGER NOT NULL,
		order_count INTEGER NOT NULL,
		seeded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS shops (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		cover_img TEXT NOT NULL,
		longitude NUMERIC(9,6) NOT NULL,
		latitude NUMERIC(9,6) NOT NULL,
		open_date DATE NOT NULL,
		introduce TEXT NOT NULL,
		status SMALLINT NOT NULL CHECK (status BETWEEN 0 AND 3),
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS customers (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		email TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		last_visit TIMESTAMPTZ,
		total_spent NUMERIC(12,2) NOT NULL CHECK (total_spent >= 0),
		loyalty_points INTEGER NOT NULL CHECK (loyalty_points >= 0),
		preferred_location TEXT NOT NULL,
		gender SMALLINT NOT NULL,
		birthdate DATE,
		age INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
		customer_name TEXT NOT NULL,
		total_amount NUMERIC(12,2) NOT NULL CHECK (total_amount >= 0),
		order_date TIMESTAMPTZ NOT NULL,
		status TEXT NOT NULL CHECK (status IN ('pending', 'completed', 'canceled')),
		payment_method TEXT NOT NULL,
		location TEXT NOT NULL,
		staff_id TEXT NOT NULL,
		staff_name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS order_items (
		id UUID PRIMARY KEY,
		order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		service_type TEXT NOT NULL,
		price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
		quantity INTEGER NOT NULL CHECK (quantity > 0)
	);

	CREATE INDEX IF NOT EXISTS idx_orders_customer_id ON orders(customer_id);
	CREATE INDEX IF NOT EXISTS idx_orders_order_date ON orders(order_date);
	CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id);
`
