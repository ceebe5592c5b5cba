package model

import "sort"

// EntityKind selects an id space of the state change context.
type EntityKind int

const (
	EntityAccount EntityKind = iota
	EntityContract
	EntityFile
	EntitySchedule
	EntityToken
	EntityTopic
)

type topicState struct {
	sequenceNumber uint64
	// running hash per sequence number, one for every topic update in the block
	runningHashes map[uint64][]byte
}

// StateChangeContext indexes the state deltas of one block. The reader populates
// it while scanning items and freezes it; transformers then claim from it while
// walking the block's transactions from last to first. Because the feed only
// carries the block's final state, every claim moves the aggregate one
// transaction further back in time.
type StateChangeContext struct {
	aliases  map[string]EntityID
	entities map[EntityKind][]EntityID
	nodes    []uint64
	supplies map[EntityID]uint64
	topics   map[EntityID]*topicState
	serials  map[EntityID][]int64
	seen     map[EntityKind]map[EntityID]struct{}
	frozen   bool
}

// NewStateChangeContext returns an empty context.
func NewStateChangeContext() *StateChangeContext {
	return &StateChangeContext{
		aliases:  make(map[string]EntityID),
		entities: make(map[EntityKind][]EntityID),
		supplies: make(map[EntityID]uint64),
		topics:   make(map[EntityID]*topicState),
		serials:  make(map[EntityID][]int64),
		seen:     make(map[EntityKind]map[EntityID]struct{}),
	}
}

// AddEntity records an entity touched by the block.
func (c *StateChangeContext) AddEntity(kind EntityKind, id EntityID) {
	if c.frozen || id.IsZero() {
		return
	}
	seen, ok := c.seen[kind]
	if !ok {
		seen = make(map[EntityID]struct{})
		c.seen[kind] = seen
	}
	if _, dup := seen[id]; dup {
		return
	}
	seen[id] = struct{}{}
	c.entities[kind] = append(c.entities[kind], id)
}

// AddAccount records an account and, when present, its alias.
func (c *StateChangeContext) AddAccount(id EntityID, alias []byte) {
	if c.frozen {
		return
	}
	c.AddEntity(EntityAccount, id)
	if len(alias) > 0 {
		c.aliases[string(alias)] = id
	}
}

// AddToken records a token and its final total supply.
func (c *StateChangeContext) AddToken(id EntityID, totalSupply uint64) {
	if c.frozen {
		return
	}
	c.AddEntity(EntityToken, id)
	c.supplies[id] = totalSupply
}

// AddTopic records one update of a topic. The highest sequence number seen is
// the topic's final state; the running hash of every update is kept.
func (c *StateChangeContext) AddTopic(id EntityID, sequenceNumber uint64, runningHash []byte) {
	if c.frozen {
		return
	}
	c.AddEntity(EntityTopic, id)
	state, ok := c.topics[id]
	if !ok {
		state = &topicState{runningHashes: make(map[uint64][]byte)}
		c.topics[id] = state
	}
	if sequenceNumber > state.sequenceNumber {
		state.sequenceNumber = sequenceNumber
	}
	if runningHash != nil {
		state.runningHashes[sequenceNumber] = runningHash
	}
}

// AddNode records a consensus node id.
func (c *StateChangeContext) AddNode(nodeID uint64) {
	if c.frozen {
		return
	}
	for _, n := range c.nodes {
		if n == nodeID {
			return
		}
	}
	c.nodes = append(c.nodes, nodeID)
}

// AddNft records an NFT serial present in the final state.
func (c *StateChangeContext) AddNft(token EntityID, serial int64) {
	if c.frozen {
		return
	}
	for _, s := range c.serials[token] {
		if s == serial {
			return
		}
	}
	c.serials[token] = append(c.serials[token], serial)
}

// Freeze orders every id list largest first and stops further population.
func (c *StateChangeContext) Freeze() {
	if c.frozen {
		return
	}
	c.frozen = true
	for kind := range c.entities {
		ids := c.entities[kind]
		sort.Slice(ids, func(i, j int) bool { return entityLess(ids[j], ids[i]) })
	}
	sort.Slice(c.nodes, func(i, j int) bool { return c.nodes[i] > c.nodes[j] })
	for token := range c.serials {
		serials := c.serials[token]
		sort.Slice(serials, func(i, j int) bool { return serials[i] > serials[j] })
	}
	c.seen = nil
}

// NewEntityID claims the largest unclaimed id of a kind.
func (c *StateChangeContext) NewEntityID(kind EntityKind) (EntityID, bool) {
	ids := c.entities[kind]
	if len(ids) == 0 {
		return EntityID{}, false
	}
	id := ids[0]
	c.entities[kind] = ids[1:]
	return id, true
}

// NewNodeID claims the largest unclaimed node id.
func (c *StateChangeContext) NewNodeID() (uint64, bool) {
	if len(c.nodes) == 0 {
		return 0, false
	}
	id := c.nodes[0]
	c.nodes = c.nodes[1:]
	return id, true
}

// AccountByAlias resolves an alias to the numeric account it was assigned.
func (c *StateChangeContext) AccountByAlias(alias []byte) (EntityID, bool) {
	id, ok := c.aliases[string(alias)]
	return id, ok
}

// TrackTokenSupply returns the supply after and before a transaction that changed it
// by change, and rewinds the aggregate to the before value.
func (c *StateChangeContext) TrackTokenSupply(token EntityID, change int64) (after, before uint64, ok bool) {
	current, ok := c.supplies[token]
	if !ok {
		return 0, 0, false
	}
	before = uint64(int64(current) - change)
	c.supplies[token] = before
	return current, before, true
}

// TopicMessage returns the sequence number a message to topic was assigned and
// the running hash recorded for that sequence number, if any. The aggregate is
// rewound by one message.
func (c *StateChangeContext) TopicMessage(topic EntityID) (uint64, []byte, bool) {
	state, ok := c.topics[topic]
	if !ok || state.sequenceNumber == 0 {
		return 0, nil, false
	}
	seq := state.sequenceNumber
	hash := state.runningHashes[seq]
	delete(state.runningHashes, seq)
	state.sequenceNumber--
	return seq, hash, true
}

// ClaimNftSerials claims the count largest unclaimed serials of a token and
// returns them in ascending order.
func (c *StateChangeContext) ClaimNftSerials(token EntityID, count int) []int64 {
	serials := c.serials[token]
	if count > len(serials) {
		count = len(serials)
	}
	claimed := make([]int64, count)
	for i := 0; i < count; i++ {
		claimed[count-1-i] = serials[i]
	}
	c.serials[token] = serials[count:]
	return claimed
}

func entityLess(a, b EntityID) bool {
	if a.Shard != b.Shard {
		return a.Shard < b.Shard
	}
	if a.Realm != b.Realm {
		return a.Realm < b.Realm
	}
	return a.Num < b.Num
}
