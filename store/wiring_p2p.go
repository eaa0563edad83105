// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package store

import (
	"context"
	"time"

	"github.com/luxfi/dispatch/action"
	"github.com/luxfi/dispatch/event"
	"github.com/luxfi/dispatch/p2p"
)

// wireP2P registers a handler for every p2p connection/channel action. Each
// handler re-checks its own enabling condition with action.BugCondition
// before reducing: the Store only ever calls a handler for an action that
// was dispatched, and dispatch can race with a state change that makes the
// action stale (e.g. a timeout firing the same instant a FinalizeSuccess
// event arrives), so the reducer must still be defensive.
func (s *Store) wireP2P() {
	s.events.RegisterTranslator(p2p.KindOfferSdpCreateSuccessEvent, func(e event.Event) action.Action {
		ev := e.(p2p.OfferSdpCreateSuccessEvent)
		return p2p.OfferSdpCreateSuccessAction{Peer: ev.Peer, Offer: ev.Offer}
	})
	s.events.RegisterTranslator(p2p.KindOfferSendSuccessEvent, func(e event.Event) action.Action {
		ev := e.(p2p.OfferSendSuccessEvent)
		return p2p.OfferSendSuccessAction{Peer: ev.Peer}
	})
	s.events.RegisterTranslator(p2p.KindAnswerRecvSuccessEvent, func(e event.Event) action.Action {
		ev := e.(p2p.AnswerRecvSuccessEvent)
		return p2p.AnswerRecvSuccessAction{Peer: ev.Peer, Answer: ev.Answer}
	})
	s.events.RegisterTranslator(p2p.KindFinalizeSuccessEvent, func(e event.Event) action.Action {
		ev := e.(p2p.FinalizeSuccessEvent)
		return p2p.FinalizeSuccessAction{Peer: ev.Peer}
	})
	s.events.RegisterTranslator(p2p.KindConnectionErrorEvent, func(e event.Event) action.Action {
		ev := e.(p2p.ConnectionErrorEvent)
		return p2p.ErrorAction{Peer: ev.Peer, Reason: ev.Reason}
	})
	s.events.RegisterTranslator(p2p.KindChannelOpenedEvent, func(e event.Event) action.Action {
		ev := e.(p2p.ChannelOpenedEvent)
		return p2p.ChannelOpenedAction{Peer: ev.Peer, Channel: ev.Channel}
	})
	s.events.RegisterTranslator(p2p.KindChannelClosedEvent, func(e event.Event) action.Action {
		ev := e.(p2p.ChannelClosedEvent)
		return p2p.ChannelClosedAction{Peer: ev.Peer, Channel: ev.Channel}
	})

	s.RegisterEnabling(p2p.KindConnectionOutgoingInit, func(st *State, now time.Time, raw action.Action) bool {
		return p2p.IsInitEnabled(st.P2P, raw.(p2p.InitAction), now)
	})
	s.RegisterEnabling(p2p.KindConnectionOutgoingOfferSdpCreateSuccess, func(st *State, _ time.Time, raw action.Action) bool {
		return p2p.IsOfferSdpCreateSuccessEnabled(st.P2P, raw.(p2p.OfferSdpCreateSuccessAction))
	})
	s.RegisterEnabling(p2p.KindConnectionOutgoingOfferSendSuccess, func(st *State, _ time.Time, raw action.Action) bool {
		return p2p.IsOfferSendSuccessEnabled(st.P2P, raw.(p2p.OfferSendSuccessAction))
	})
	s.RegisterEnabling(p2p.KindConnectionOutgoingAnswerRecvSuccess, func(st *State, _ time.Time, raw action.Action) bool {
		return p2p.IsAnswerRecvSuccessEnabled(st.P2P, raw.(p2p.AnswerRecvSuccessAction))
	})
	s.RegisterEnabling(p2p.KindConnectionOutgoingFinalizeSuccess, func(st *State, _ time.Time, raw action.Action) bool {
		return p2p.IsFinalizeSuccessEnabled(st.P2P, raw.(p2p.FinalizeSuccessAction))
	})
	s.RegisterEnabling(p2p.KindConnectionOutgoingError, func(st *State, _ time.Time, raw action.Action) bool {
		return p2p.IsErrorEnabled(st.P2P, raw.(p2p.ErrorAction))
	})
	s.RegisterEnabling(p2p.KindChannelOpened, func(st *State, _ time.Time, raw action.Action) bool {
		return p2p.IsChannelOpenedEnabled(st.P2P, raw.(p2p.ChannelOpenedAction))
	})
	s.RegisterEnabling(p2p.KindChannelClosed, func(st *State, _ time.Time, raw action.Action) bool {
		return p2p.IsChannelClosedEnabled(st.P2P, raw.(p2p.ChannelClosedAction))
	})

	s.Register(p2p.KindConnectionOutgoingInit, func(st *State, disp action.Dispatcher, now time.Time, raw action.Action) {
		a := raw.(p2p.InitAction)
		if action.BugCondition(s.logger, p2p.IsInitEnabled(st.P2P, a, now), "p2p: init not enabled", "peer", a.Peer.String()) {
			return
		}
		c, won := p2p.ReduceInit(st.P2P, a)
		if !won || s.services.P2P == nil {
			return
		}
		req := s.NextRequestID()
		if err := s.services.P2P.Connect(context.Background(), req, a.Peer); err != nil && s.logger != nil {
			s.logger.Warn("store: p2p connect failed", "peer", a.Peer.String(), "err", err)
			return
		}
		// Connect itself only starts the handshake; the SDP offer/answer/
		// finalize steps that follow complete asynchronously and arrive as
		// events (see p2p/event.go), so the only phase bookkeeping this
		// handler does directly is marking the offer now in flight.
		c.ToOfferSdpCreatePending()
	})

	s.Register(p2p.KindConnectionOutgoingOfferSdpCreateSuccess, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		a := raw.(p2p.OfferSdpCreateSuccessAction)
		if action.BugCondition(s.logger, p2p.IsOfferSdpCreateSuccessEnabled(st.P2P, a), "p2p: offer create success not enabled", "peer", a.Peer.String()) {
			return
		}
		p2p.ReduceOfferSdpCreateSuccess(st.P2P, a)
	})

	s.Register(p2p.KindConnectionOutgoingOfferSendSuccess, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		a := raw.(p2p.OfferSendSuccessAction)
		if action.BugCondition(s.logger, p2p.IsOfferSendSuccessEnabled(st.P2P, a), "p2p: offer send success not enabled", "peer", a.Peer.String()) {
			return
		}
		p2p.ReduceOfferSendSuccess(st.P2P, a)
	})

	s.Register(p2p.KindConnectionOutgoingAnswerRecvSuccess, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		a := raw.(p2p.AnswerRecvSuccessAction)
		if action.BugCondition(s.logger, p2p.IsAnswerRecvSuccessEnabled(st.P2P, a), "p2p: answer recv success not enabled", "peer", a.Peer.String()) {
			return
		}
		p2p.ReduceAnswerRecvSuccess(st.P2P, a)
	})

	s.Register(p2p.KindConnectionOutgoingFinalizeSuccess, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		a := raw.(p2p.FinalizeSuccessAction)
		if action.BugCondition(s.logger, p2p.IsFinalizeSuccessEnabled(st.P2P, a), "p2p: finalize success not enabled", "peer", a.Peer.String()) {
			return
		}
		p2p.ReduceFinalizeSuccess(st.P2P, a)
	})

	s.Register(p2p.KindConnectionOutgoingError, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		a := raw.(p2p.ErrorAction)
		if action.BugCondition(s.logger, p2p.IsErrorEnabled(st.P2P, a), "p2p: error not enabled", "peer", a.Peer.String()) {
			return
		}
		p2p.ReduceError(st.P2P, a)
	})

	s.Register(p2p.KindChannelOpened, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		a := raw.(p2p.ChannelOpenedAction)
		if action.BugCondition(s.logger, p2p.IsChannelOpenedEnabled(st.P2P, a), "p2p: channel opened not enabled", "peer", a.Peer.String()) {
			return
		}
		p2p.ReduceChannelOpened(st.P2P, a)
	})

	s.Register(p2p.KindChannelClosed, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		a := raw.(p2p.ChannelClosedAction)
		if action.BugCondition(s.logger, p2p.IsChannelClosedEnabled(st.P2P, a), "p2p: channel closed not enabled", "peer", a.Peer.String()) {
			return
		}
		p2p.ReduceChannelClosed(st.P2P, a)
	})
}
