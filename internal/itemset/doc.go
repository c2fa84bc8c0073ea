/*
Package itemset implements a small iteratable container, used by the
chart engine to represent an Earley item set.

Set is a special-purpose set type suitable for worklist algorithms: items
may be added to a set while it is being iterated over, and the iteration
will pick them up — this is exactly the access pattern the Earley
inner loop needs (Scanner/Predictor/Completer keep appending to the very
set they are walking). Add mutates the receiver in place; Subset and
Copy both hand back a fresh set and leave the receiver unchanged.

*/
package itemset
