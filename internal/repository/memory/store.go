// Package memory is a map-backed implementation of domain.Gateway for tests
// and demo mode. Every write runs under one mutex, so multi-step writes are
// atomic with respect to each other.
package memory

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"creon-backend/internal/domain"
)

type Store struct {
	mu  sync.Mutex
	now func() time.Time

	users        map[int64]*domain.User
	nfts         map[int64]*domain.NFT
	grants       map[int64]*domain.Grant
	applications map[int64]*domain.GrantApplication
	tips         map[int64]*domain.Tip
	content      map[int64]*domain.TokenGatedContent
	stats        map[int64]*domain.UserStats // keyed by user id

	seq map[string]int64
}

var _ domain.Gateway = (*Store)(nil)

type Option func(*Store)

// WithClock overrides time.Now for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithSampleData seeds the demo profile, NFTs, grants and gated content.
func WithSampleData() Option {
	return func(s *Store) { s.seed() }
}

func New(opts ...Option) *Store {
	s := &Store{
		now:          time.Now,
		users:        map[int64]*domain.User{},
		nfts:         map[int64]*domain.NFT{},
		grants:       map[int64]*domain.Grant{},
		applications: map[int64]*domain.GrantApplication{},
		tips:         map[int64]*domain.Tip{},
		content:      map[int64]*domain.TokenGatedContent{},
		stats:        map[int64]*domain.UserStats{},
		seq:          map[string]int64{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

func (s *Store) nextID(collection string) int64 {
	s.seq[collection]++
	return s.seq[collection]
}

// Users

func (s *Store) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, nil
}

func (s *Store) GetUserByWallet(ctx context.Context, address string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u := s.userByWallet(address); u != nil {
		return cloneUser(u), nil
	}
	return nil, nil
}

func (s *Store) userByWallet(address string) *domain.User {
	for _, u := range s.users {
		if u.WalletAddress != nil && *u.WalletAddress == address {
			return u
		}
	}
	return nil
}

func (s *Store) CreateUser(ctx context.Context, nu domain.NewUser) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertUser(nu)
}

func (s *Store) CreateUserIfWalletAbsent(ctx context.Context, nu domain.NewUser) (*domain.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if nu.WalletAddress != nil {
		if u := s.userByWallet(*nu.WalletAddress); u != nil {
			return cloneUser(u), false, nil
		}
	}
	u, err := s.insertUser(nu)
	if err != nil {
		return nil, false, err
	}
	return u, true, nil
}

func (s *Store) insertUser(nu domain.NewUser) (*domain.User, error) {
	if err := s.checkUnique(0, nu.Username, nu.Email, nu.WalletAddress); err != nil {
		return nil, err
	}
	now := s.now()
	u := &domain.User{
		ID:            s.nextID("users"),
		Username:      nu.Username,
		Email:         nu.Email,
		Name:          nu.Name,
		Title:         nu.Title,
		WalletAddress: nu.WalletAddress,
		WalletType:    nu.WalletType,
		IsVerified:    nu.IsVerified,
		Avatar:        nu.Avatar,
		Bio:           nu.Bio,
		CreatedAt:     now,
	}
	s.users[u.ID] = cloneUser(u)
	st := domain.ZeroStats(u.ID)
	st.ID = s.nextID("user_stats")
	st.UpdatedAt = now
	s.stats[u.ID] = &st
	return u, nil
}

// checkUnique reports the first unique field of another user (id != self)
// that collides with the given values.
func (s *Store) checkUnique(self int64, username, email string, wallet *string) error {
	for _, u := range s.users {
		if u.ID == self {
			continue
		}
		if u.Username == username {
			return &domain.UniqueViolationError{Field: "username"}
		}
		if u.Email == email {
			return &domain.UniqueViolationError{Field: "email"}
		}
		if wallet != nil && u.WalletAddress != nil && *u.WalletAddress == *wallet {
			return &domain.UniqueViolationError{Field: "walletAddress"}
		}
	}
	return nil
}

func (s *Store) UpdateUser(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	next := cloneUser(cur)
	patch.Apply(next)
	if err := s.checkUnique(id, next.Username, next.Email, next.WalletAddress); err != nil {
		return nil, err
	}
	s.users[id] = next
	return cloneUser(next), nil
}

// NFTs

func (s *Store) GetNFTsByUserID(ctx context.Context, userID int64) ([]domain.NFT, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.NFT{}
	for _, n := range s.nfts {
		if n.UserID == userID {
			out = append(out, *cloneNFT(n))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) CreateNFT(ctx context.Context, nn domain.NewNFT) (*domain.NFT, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[nn.UserID]; !ok {
		return nil, &domain.ReferenceError{Field: "userId", ID: nn.UserID}
	}
	n := &domain.NFT{
		ID:              s.nextID("nfts"),
		UserID:          nn.UserID,
		TokenID:         nn.TokenID,
		ContractAddress: nn.ContractAddress,
		Name:            nn.Name,
		Description:     nn.Description,
		ImageURL:        nn.ImageURL,
		Metadata:        cloneRaw(nn.Metadata),
		Blockchain:      nn.Blockchain,
		CreatedAt:       s.now(),
	}
	s.nfts[n.ID] = n
	return cloneNFT(n), nil
}

// Grants

func (s *Store) ListGrants(ctx context.Context) ([]domain.Grant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Grant, 0, len(s.grants))
	for _, g := range s.grants {
		out = append(out, *cloneGrant(g))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetGrant(ctx context.Context, id int64) (*domain.Grant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g, ok := s.grants[id]; ok {
		return cloneGrant(g), nil
	}
	return nil, nil
}

func (s *Store) CreateGrant(ctx context.Context, ng domain.NewGrant) (*domain.Grant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status := ng.Status
	if status == "" {
		status = domain.GrantOpen
	}
	g := &domain.Grant{
		ID:           s.nextID("grants"),
		Title:        ng.Title,
		Description:  ng.Description,
		Amount:       ng.Amount,
		Currency:     ng.Currency,
		Organization: ng.Organization,
		LogoURL:      ng.LogoURL,
		Deadline:     ng.Deadline,
		Status:       status,
		Requirements: ng.Requirements,
		CreatedAt:    s.now(),
	}
	s.grants[g.ID] = cloneGrant(g)
	return g, nil
}

func (s *Store) GetGrantApplicationsByUserID(ctx context.Context, userID int64) ([]domain.GrantApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.GrantApplication{}
	for _, a := range s.applications {
		if a.UserID == userID {
			out = append(out, *cloneApplication(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) CreateGrantApplication(ctx context.Context, na domain.NewGrantApplication) (*domain.GrantApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[na.UserID]; !ok {
		return nil, &domain.ReferenceError{Field: "userId", ID: na.UserID}
	}
	g, ok := s.grants[na.GrantID]
	if !ok {
		return nil, &domain.ReferenceError{Field: "grantId", ID: na.GrantID}
	}
	a := &domain.GrantApplication{
		ID:                 s.nextID("grant_applications"),
		UserID:             na.UserID,
		GrantID:            na.GrantID,
		ProjectTitle:       na.ProjectTitle,
		ProjectDescription: na.ProjectDescription,
		RequestedAmount:    na.RequestedAmount,
		Portfolio:          na.Portfolio,
		Status:             domain.ApplicationPending,
		SubmittedAt:        s.now(),
	}
	s.applications[a.ID] = cloneApplication(a)
	g.ApplicationCount++
	return a, nil
}

// Tips

func (s *Store) GetTipsByUserID(ctx context.Context, userID int64) ([]domain.Tip, error) {
	return s.tipsWhere(func(t *domain.Tip) bool { return t.ToUserID == userID }), nil
}

func (s *Store) GetSentTipsByUserID(ctx context.Context, userID int64) ([]domain.Tip, error) {
	return s.tipsWhere(func(t *domain.Tip) bool { return t.FromUserID == userID }), nil
}

func (s *Store) tipsWhere(match func(*domain.Tip) bool) []domain.Tip {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Tip{}
	for _, t := range s.tips {
		if match(t) {
			out = append(out, *cloneTip(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) CreateTip(ctx context.Context, nt domain.NewTip) (*domain.TipReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[nt.FromUserID]; !ok {
		return nil, &domain.ReferenceError{Field: "fromUserId", ID: nt.FromUserID}
	}
	if _, ok := s.users[nt.ToUserID]; !ok {
		return nil, &domain.ReferenceError{Field: "toUserId", ID: nt.ToUserID}
	}
	st, hasStats := s.stats[nt.ToUserID]
	earned := domain.ZeroAmount()
	if hasStats {
		earned = st.TotalEarnings
	}
	if earned.Add(nt.Amount).ExceedsMax() {
		return nil, domain.NewEarningsOverflowError()
	}

	currency := nt.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	now := s.now()
	t := &domain.Tip{
		ID:              s.nextID("tips"),
		FromUserID:      nt.FromUserID,
		ToUserID:        nt.ToUserID,
		Amount:          nt.Amount,
		Currency:        currency,
		Message:         nt.Message,
		TransactionHash: nt.TransactionHash,
		Status:          domain.TipPending,
		CreatedAt:       now,
	}
	s.tips[t.ID] = cloneTip(t)

	receipt := &domain.TipReceipt{}
	if !hasStats {
		st = s.newStats(nt.ToUserID)
		receipt.StatsRecovered = true
	}
	st.TipCount++
	st.TotalEarnings = st.TotalEarnings.Add(nt.Amount)
	st.UpdatedAt = now

	statsCopy := *st
	receipt.Tip = t
	receipt.Stats = &statsCopy
	return receipt, nil
}

// Token-gated content

func (s *Store) ListActiveContent(ctx context.Context) ([]domain.TokenGatedContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.TokenGatedContent{}
	for _, c := range s.content {
		if c.IsActive {
			out = append(out, *cloneContent(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetContent(ctx context.Context, id int64) (*domain.TokenGatedContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.content[id]; ok {
		return cloneContent(c), nil
	}
	return nil, nil
}

func (s *Store) CreateContent(ctx context.Context, nc domain.NewTokenGatedContent) (*domain.TokenGatedContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := &domain.TokenGatedContent{
		ID:                      s.nextID("token_gated_content"),
		Title:                   nc.Title,
		Description:             nc.Description,
		ImageURL:                nc.ImageURL,
		RequiredTokenType:       nc.RequiredTokenType,
		RequiredTokenAmount:     nc.RequiredTokenAmount,
		RequiredContractAddress: nc.RequiredContractAddress,
		RequiredTokenSymbol:     nc.RequiredTokenSymbol,
		ContentType:             nc.ContentType,
		ContentURL:              nc.ContentURL,
		IsActive:                nc.IsActive,
		CreatedAt:               s.now(),
	}
	s.content[c.ID] = cloneContent(c)
	return c, nil
}

// Stats

func (s *Store) GetUserStats(ctx context.Context, userID int64) (*domain.UserStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.stats[userID]; ok {
		cp := *st
		return &cp, nil
	}
	return nil, nil
}

func (s *Store) UpdateUserStats(ctx context.Context, userID int64, patch domain.StatsPatch) (*domain.UserStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[userID]; !ok {
		return nil, &domain.ReferenceError{Field: "userId", ID: userID}
	}
	st, ok := s.stats[userID]
	if !ok {
		st = s.newStats(userID)
	}
	patch.Apply(st)
	st.UpdatedAt = s.now()
	cp := *st
	return &cp, nil
}

func (s *Store) newStats(userID int64) *domain.UserStats {
	st := domain.ZeroStats(userID)
	st.ID = s.nextID("user_stats")
	s.stats[userID] = &st
	return &st
}

// DeleteUserStats removes a stats row. It exists only so tests can
// reproduce a missing-row invariant breach.
func (s *Store) DeleteUserStats(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.stats, userID)
}

func cloneUser(u *domain.User) *domain.User {
	cp := *u
	cp.Title = cloneStr(u.Title)
	cp.WalletAddress = cloneStr(u.WalletAddress)
	cp.Avatar = cloneStr(u.Avatar)
	cp.Bio = cloneStr(u.Bio)
	if u.WalletType != nil {
		wt := *u.WalletType
		cp.WalletType = &wt
	}
	return &cp
}

func cloneNFT(n *domain.NFT) *domain.NFT {
	cp := *n
	cp.Metadata = cloneRaw(n.Metadata)
	return &cp
}

func cloneGrant(g *domain.Grant) *domain.Grant {
	cp := *g
	cp.LogoURL = cloneStr(g.LogoURL)
	cp.Requirements = cloneStr(g.Requirements)
	return &cp
}

func cloneApplication(a *domain.GrantApplication) *domain.GrantApplication {
	cp := *a
	cp.Portfolio = cloneStr(a.Portfolio)
	return &cp
}

func cloneTip(t *domain.Tip) *domain.Tip {
	cp := *t
	cp.Message = cloneStr(t.Message)
	cp.TransactionHash = cloneStr(t.TransactionHash)
	return &cp
}

func cloneContent(c *domain.TokenGatedContent) *domain.TokenGatedContent {
	cp := *c
	cp.RequiredContractAddress = cloneStr(c.RequiredContractAddress)
	cp.RequiredTokenSymbol = cloneStr(c.RequiredTokenSymbol)
	cp.ContentURL = cloneStr(c.ContentURL)
	if c.RequiredTokenAmount != nil {
		n := *c.RequiredTokenAmount
		cp.RequiredTokenAmount = &n
	}
	return &cp
}

func cloneStr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneRaw(m json.RawMessage) json.RawMessage {
	if m == nil {
		return nil
	}
	return append(json.RawMessage(nil), m...)
}
