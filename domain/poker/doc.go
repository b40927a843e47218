// Package poker implements the showdown rules of a 52-card Leduc Hold'em
// variant: every player holds one hole card and a single public card may be
// shared by all players.
//
// # Core Types
//
// Card: a playing card with suit and rank. Cards are totally ordered by
// their score, rank first and suit (Club < Diamond < Heart < Spade) second.
//
// Player: the terminal view of a seat, with its hole card, status and the
// chips it put in the pot.
//
// Judger: decides the winner set of a finished hand and computes the
// zero-sum payoff of every player.
//
// # Hand Evaluation
//
// A hole card matching the rank of the public card is a pair and beats any
// unpaired card. Otherwise the highest score wins. When several players share
// the maximum score the pot is split evenly among them.
package poker
