package service

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"rude-dashboard-be/internal/entity"
	"rude-dashboard-be/internal/pkg/serverutils"
	"rude-dashboard-be/internal/repository/specification"
	"rude-dashboard-be/pkg/cdn"
	"rude-dashboard-be/pkg/events"
	"rude-dashboard-be/pkg/solana"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeTransactionRepo struct {
	mu  sync.Mutex
	txs map[string]*entity.RudeTransaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{txs: make(map[string]*entity.RudeTransaction)}
}

func (r *fakeTransactionRepo) EnsureIndexes(ctx context.Context) error { return nil }

func (r *fakeTransactionRepo) Create(ctx context.Context, tx *entity.RudeTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.txs[tx.TxId]; ok {
		return serverutils.ErrConflict
	}
	cp := *tx
	r.txs[tx.TxId] = &cp
	return nil
}

func (r *fakeTransactionRepo) UpdateState(ctx context.Context, txId string, from, to entity.TransactionState) (*entity.RudeTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.txs[txId]
	if !ok || tx.State != from {
		return nil, nil
	}
	tx.State = to
	cp := *tx
	return &cp, nil
}

func (r *fakeTransactionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RudeTransaction, error) {
	all, _ := r.FindAll(ctx, specs...)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

// FindAll understands the txId, wallet, state and service filters and the newest-first sort.
func (r *fakeTransactionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RudeTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q := specification.Build(specs...)
	var out []*entity.RudeTransaction
	for _, tx := range r.txs {
		if matches(q.Filter, tx) {
			cp := *tx
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if q.Skip > 0 && int(q.Skip) < len(out) {
		out = out[q.Skip:]
	}
	if q.Limit > 0 && int(q.Limit) < len(out) {
		out = out[:q.Limit]
	}
	return out, nil
}

func matches(filter bson.D, tx *entity.RudeTransaction) bool {
	for _, e := range filter {
		switch e.Key {
		case "txId":
			if tx.TxId != e.Value {
				return false
			}
		case "wallet":
			if tx.Wallet != e.Value {
				return false
			}
		case "state":
			if string(tx.State) != e.Value {
				return false
			}
		case "service":
			if string(tx.Service) != e.Value {
				return false
			}
		}
	}
	return true
}

func (r *fakeTransactionRepo) get(txId string) *entity.RudeTransaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.txs[txId]
	if !ok {
		return nil
	}
	cp := *tx
	return &cp
}

type fakeFeaturedRepo struct {
	mu       sync.Mutex
	items    []*entity.FeaturedNFT
	err      error
	upserted chan *entity.FeaturedNFT
}

func (r *fakeFeaturedRepo) FindRandom(ctx context.Context) (*entity.FeaturedNFT, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return nil, nil
	}
	return r.items[0], nil
}

func (r *fakeFeaturedRepo) Upsert(ctx context.Context, featured *entity.FeaturedNFT) error {
	r.mu.Lock()
	r.items = append(r.items, featured)
	r.mu.Unlock()
	if r.upserted != nil {
		r.upserted <- featured
	}
	return nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products []*entity.Product
	err      error
	lastSpec *specification.Query
}

func (r *fakeProductRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastSpec = specification.Build(specs...)
	if r.err != nil {
		return nil, r.err
	}
	return r.products, nil
}

// fakeMetadataRepo hands out copies, as decoding from Mongo would.
type fakeMetadataRepo struct {
	mu       sync.Mutex
	items    map[string]*entity.NFTMetadata
	upserts  int
	findErr  error
	findHits int
}

func newFakeMetadataRepo(items ...*entity.NFTMetadata) *fakeMetadataRepo {
	r := &fakeMetadataRepo{items: make(map[string]*entity.NFTMetadata)}
	for _, md := range items {
		r.items[md.Mint] = md
	}
	return r
}

func (r *fakeMetadataRepo) FindByMint(ctx context.Context, mint string) (*entity.NFTMetadata, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	md, ok := r.items[mint]
	if !ok {
		return nil, nil
	}
	return md.Clone(), nil
}

func (r *fakeMetadataRepo) FindByMints(ctx context.Context, mints []string) ([]*entity.NFTMetadata, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findHits++
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []*entity.NFTMetadata
	for _, m := range mints {
		if md, ok := r.items[m]; ok {
			out = append(out, md.Clone())
		}
	}
	return out, nil
}

func (r *fakeMetadataRepo) Upsert(ctx context.Context, metadata *entity.NFTMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upserts++
	r.items[metadata.Mint] = metadata.Clone()
	return nil
}

type fakeNonceStore struct {
	mu     sync.Mutex
	nonces map[string]string
}

func newFakeNonceStore() *fakeNonceStore {
	return &fakeNonceStore{nonces: make(map[string]string)}
}

func (s *fakeNonceStore) Save(ctx context.Context, wallet, nonce string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nonces[wallet] = nonce
	return nil
}

func (s *fakeNonceStore) Get(ctx context.Context, wallet string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nonces[wallet]
	return n, ok, nil
}

func (s *fakeNonceStore) Delete(ctx context.Context, wallet string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.nonces, wallet)
	return nil
}

type fakeChain struct {
	mu         sync.Mutex
	metadata   map[string]*solana.OffChainMetadata
	statuses   []solana.SignatureState
	payments   map[string]*solana.Payment
	paymentErr error
	calls      int
}

func (c *fakeChain) FetchMetadata(ctx context.Context, mint string) (*solana.OnChainMetadata, *solana.OffChainMetadata, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	off, ok := c.metadata[mint]
	if !ok {
		return nil, nil, solana.ErrMetadataNotFound
	}
	return &solana.OnChainMetadata{Mint: mint, Name: off.Name, URI: "https://arweave.net/" + mint}, off, nil
}

// SignatureStatus replays statuses in order and repeats the last one.
func (c *fakeChain) SignatureStatus(ctx context.Context, signature string) (solana.SignatureState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.statuses) == 0 {
		return "", errors.New("rpc unavailable")
	}
	st := c.statuses[0]
	if len(c.statuses) > 1 {
		c.statuses = c.statuses[1:]
	}
	return st, nil
}

func (c *fakeChain) FetchPayment(ctx context.Context, signature string) (*solana.Payment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paymentErr != nil {
		return nil, c.paymentErr
	}
	p, ok := c.payments[signature]
	if !ok {
		return nil, solana.ErrTransactionNotFound
	}
	return p, nil
}

type fakeUploader struct {
	requests []cdn.UploadRequest
	bodies   [][]byte
	err      error
}

func (u *fakeUploader) Upload(ctx context.Context, file interface{}, req cdn.UploadRequest) (*cdn.UploadResult, error) {
	if u.err != nil {
		return nil, u.err
	}
	u.requests = append(u.requests, req)
	if r, ok := file.(io.Reader); ok {
		b, _ := io.ReadAll(r)
		u.bodies = append(u.bodies, b)
	}
	return &cdn.UploadResult{PublicID: req.Folder + "/" + req.PublicID}, nil
}

type fakeEventPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *fakeEventPublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *fakeEventPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}

type fakeQueue struct {
	payloads [][]byte
	err      error
}

func (q *fakeQueue) Publish(ctx context.Context, payload []byte) error {
	if q.err != nil {
		return q.err
	}
	q.payloads = append(q.payloads, payload)
	return nil
}
