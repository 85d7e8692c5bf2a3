package localstore

const (
	insertPendingSaleQuery = `INSERT INTO pending_sales (temp_id, server_id, created_at_local, items, payments, total_amount, paid_amount, sync_status, last_error)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	selectPendingSaleQuery = `SELECT temp_id, server_id, created_at_local, items, payments, total_amount, paid_amount, sync_status, last_error
FROM pending_sales WHERE temp_id = ?`

	selectAllPendingSalesQuery = `SELECT temp_id, server_id, created_at_local, items, payments, total_amount, paid_amount, sync_status, last_error
FROM pending_sales ORDER BY created_at_local`

	selectPendingSalesByStatusQuery = `SELECT temp_id, server_id, created_at_local, items, payments, total_amount, paid_amount, sync_status, last_error
FROM pending_sales WHERE sync_status = ? ORDER BY created_at_local`

	updatePendingSaleStatusQuery = `UPDATE pending_sales SET sync_status = ?, last_error = ? WHERE temp_id = ?`

	updatePendingSaleSyncedQuery = `UPDATE pending_sales SET server_id = ?, sync_status = ?, last_error = '' WHERE temp_id = ?`

	updatePendingSalePaymentsQuery = `UPDATE pending_sales SET payments = ?, paid_amount = ? WHERE temp_id = ?`

	countPendingSalesByStatusQuery = `SELECT COUNT(*) FROM pending_sales WHERE sync_status = ?`

	enqueueQuery = `INSERT INTO sync_queue (action, sale_ref, payload, created_at) VALUES (?, ?, ?, ?)`

	selectQueueInOrderQuery = `SELECT id, action, sale_ref, payload, created_at FROM sync_queue ORDER BY id`

	deleteQueueEntryQuery = `DELETE FROM sync_queue WHERE id = ?`

	countQueueQuery = `SELECT COUNT(*) FROM sync_queue`

	// unsynced sales with no queue entry left for them: the queue row was
	// consumed but the status update never landed (crash between the two)
	selectOrphanedSalesQuery = `SELECT temp_id FROM pending_sales
WHERE sync_status IN ('pending', 'syncing')
  AND temp_id NOT IN (SELECT sale_ref FROM sync_queue WHERE action = 'create_sale')`

	upsertProductQuery = `INSERT INTO products_cache (id, name, price, stock_quantity, unit, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET name = excluded.name, price = excluded.price, stock_quantity = excluded.stock_quantity, unit = excluded.unit, updated_at = excluded.updated_at`

	selectProductQuery = `SELECT id, name, price, stock_quantity, unit, updated_at FROM products_cache WHERE id = ?`

	selectAllProductsQuery = `SELECT id, name, price, stock_quantity, unit, updated_at FROM products_cache ORDER BY name`

	countProductsQuery = `SELECT COUNT(*) FROM products_cache`

	upsertClientQuery = `INSERT INTO clients_cache (id, name, phone, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET name = excluded.name, phone = excluded.phone, updated_at = excluded.updated_at`

	selectClientQuery = `SELECT id, name, phone, updated_at FROM clients_cache WHERE id = ?`

	selectAllClientsQuery = `SELECT id, name, phone, updated_at FROM clients_cache ORDER BY name`

	countClientsQuery = `SELECT COUNT(*) FROM clients_cache`
)
