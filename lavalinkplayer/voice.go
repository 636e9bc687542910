package lavalinkplayer

import (
	"sync"

	"github.com/disgoorg/snowflake/v2"
)

// pendingJoin is closed once discord has sent both the voice state and the
// voice server of a join we asked for.
type pendingJoin struct {
	mutex          sync.Mutex
	hasVoiceState  bool
	hasVoiceServer bool
	ready          chan struct{}
}

func newPendingJoin() *pendingJoin {
	return &pendingJoin{ready: make(chan struct{})}
}

func (p *pendingJoin) onEvent(isVoiceState bool) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if isVoiceState {
		p.hasVoiceState = true
	} else {
		p.hasVoiceServer = true
	}

	if !p.hasVoiceState || !p.hasVoiceServer {
		return
	}

	select {
	case <-p.ready:
	default:
		close(p.ready)
	}
}

// voiceCredentials collects the halves of a voice session. Lavalink rejects
// partial voice states, so nothing is forwarded until both have arrived.
type voiceCredentials struct {
	mutex sync.Mutex

	hasVoiceState bool
	channelID     *snowflake.ID
	sessionID     string

	hasVoiceServer bool
	token          string
	endpoint       string

	// established is set once a complete set was handed to lavalink.
	established bool
}

func (vc *voiceCredentials) setVoiceState(channelID *snowflake.ID, sessionID string) bool {
	vc.mutex.Lock()
	defer vc.mutex.Unlock()

	vc.hasVoiceState = true
	vc.channelID = channelID
	vc.sessionID = sessionID

	return vc.hasVoiceServer
}

func (vc *voiceCredentials) setVoiceServer(token string, endpoint string) bool {
	vc.mutex.Lock()
	defer vc.mutex.Unlock()

	vc.hasVoiceServer = true
	vc.token = token
	vc.endpoint = endpoint

	return vc.hasVoiceState
}

func (vc *voiceCredentials) isEstablished() bool {
	vc.mutex.Lock()
	defer vc.mutex.Unlock()
	return vc.established
}

// take returns the collected credentials and resets them.
func (vc *voiceCredentials) take() (channelID *snowflake.ID, sessionID string, token string, endpoint string) {
	vc.mutex.Lock()
	defer vc.mutex.Unlock()

	channelID, sessionID, token, endpoint = vc.channelID, vc.sessionID, vc.token, vc.endpoint
	vc.hasVoiceState, vc.hasVoiceServer = false, false
	vc.channelID = nil
	vc.sessionID, vc.token, vc.endpoint = "", "", ""
	vc.established = true

	return
}
