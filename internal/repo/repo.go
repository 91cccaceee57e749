package repo

import (
	"github.com/GlebRadaev/qiwi/internal/pg"
	cursorrepo "github.com/GlebRadaev/qiwi/internal/repo/cursor-repo"
	txnrepo "github.com/GlebRadaev/qiwi/internal/repo/txn-repo"
)

type Repositories struct {
	TxnRepo    *txnrepo.Repository
	CursorRepo *cursorrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		TxnRepo:    txnrepo.New(conn),
		CursorRepo: cursorrepo.New(conn, txManager),
	}
}
