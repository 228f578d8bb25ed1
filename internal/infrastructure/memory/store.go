// Package memory はプロセス内メモリに状態を保持するリポジトリ実装
package memory

import (
	"fmt"
	"sync"

	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/play"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/seat"
	"github.com/sanosuguru/go-theater-ticket-booking/internal/domain/ticket"
)

// Store は公演・座席台帳・チケット列をひとつのロックで保護する状態コンテナ
type Store struct {
	mu       sync.RWMutex
	plays    []*play.Play
	playIdx  map[int]*play.Play
	occupied map[int]map[seat.Position]struct{}
	tickets  []*ticket.Ticket
}

// NewStore はシードデータから Store を作成する
func NewStore(seed []*play.Play) (*Store, error) {
	s := &Store{
		plays:    make([]*play.Play, 0, len(seed)),
		playIdx:  make(map[int]*play.Play, len(seed)),
		occupied: make(map[int]map[seat.Position]struct{}),
	}
	for _, p := range seed {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("シードデータが不正です（ID %d）: %w", p.ID, err)
		}
		if _, dup := s.playIdx[p.ID]; dup {
			return nil, fmt.Errorf("シードデータが不正です（ID %d）: %w", p.ID, play.ErrDuplicatePlayID)
		}
		c := p.Clone()
		s.plays = append(s.plays, c)
		s.playIdx[c.ID] = c
	}
	return s, nil
}

func (s *Store) isOccupied(playID int, pos seat.Position) bool {
	_, ok := s.occupied[playID][pos]
	return ok
}

func (s *Store) occupy(playID int, pos seat.Position) {
	set, ok := s.occupied[playID]
	if !ok {
		set = make(map[seat.Position]struct{})
		s.occupied[playID] = set
	}
	set[pos] = struct{}{}
}
