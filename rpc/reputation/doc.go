/*
Package reputation contains off-chain model of the reputation contract worker
records.

A [Worker] pairs an account [Address] with a raw reputation score. Records are
plain values: they are built with [NewWorker], compared with Worker.Equals and
exchanged with the host through the canonical encoding ([Encode], [Decode]) or
VM stack items. Range checks against [MinReputation] and [MaxReputation] are
left to the code assigning reputation, see [CheckReputation] and
[ClampReputation].
*/
package reputation
