package store

const (
	createUser = `INSERT INTO users (login, password_hash, name, role)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, login, password_hash, name, role, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, name, role, created_at
    FROM users
    WHERE login = $1;`

	insertSale = `INSERT INTO sales (client_ref, cashier_id, total_amount, paid_amount, status, created_at_local)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, created_at;`

	insertSaleItem = `INSERT INTO sale_items (sale_id, product_id, quantity, unit_price, batch_id)
    VALUES ($1, $2, $3, $4, $5);`

	insertSalePayment = `INSERT INTO sale_payments (sale_id, payment_ref, method, amount, reference_number, paid_at)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id;`

	// stock is taken atomically: zero rows affected means either an unknown
	// product or not enough stock left
	decrementStock = `UPDATE products
    SET stock_quantity = stock_quantity - $2
    WHERE id = $1 AND stock_quantity >= $2;`

	productExists = `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1);`

	findSaleByClientRef = `SELECT id, client_ref, cashier_id, total_amount, paid_amount, status, created_at_local, created_at
    FROM sales
    WHERE client_ref = $1;`

	findSaleItems = `SELECT si.product_id, p.name, si.quantity, si.unit_price, si.batch_id
    FROM sale_items si
    JOIN products p ON p.id = si.product_id
    WHERE si.sale_id = $1
    ORDER BY si.id;`

	findSalePayments = `SELECT method, amount, paid_at, reference_number
    FROM sale_payments
    WHERE sale_id = $1
    ORDER BY id;`

	findSaleIDByClientRef = `SELECT id FROM sales WHERE client_ref = $1;`

	findPaymentIDByRef = `SELECT id FROM sale_payments WHERE payment_ref = $1;`

	increasePaidAmount = `UPDATE sales SET paid_amount = paid_amount + $2 WHERE id = $1;`

	listProducts = `SELECT id, name, price, stock_quantity, unit, updated_at
    FROM products
    ORDER BY id
    LIMIT $1 OFFSET $2;`

	countProducts = `SELECT COUNT(*) FROM products;`

	listClients = `SELECT id, name, phone, updated_at
    FROM clients
    ORDER BY id
    LIMIT $1 OFFSET $2;`

	countClients = `SELECT COUNT(*) FROM clients;`

	// old payment idempotency keys are released, not deleted: the payment row
	// stays, only its dedup key is pruned
	prunePaymentRefs = `UPDATE sale_payments
    SET payment_ref = NULL
    WHERE payment_ref IS NOT NULL AND paid_at < $1;`
)
