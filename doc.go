/*
Package packstat profiles the pack-format distribution of a sorted
node store and projects its total size under two candidate node
encodings.

Pack Formats

Every stored value encodes a tree node in one of seven layouts,
identified by a single tag:

    Tag 0 (direct):  the value is exactly 8 bytes, a bare node pointer
                     with no branch metadata. No marker byte is needed,
                     the shape implies the format.
    Tags 1-6:        the first byte of the value is the tag. Tags 1-5
                     are branch-capable layouts carrying 0, 1, 2, 4 or
                     6 branch-descriptor units per record; tag 6 is the
                     wide layout which neither candidate encoding
                     models.

Size Schemes

Each candidate encoding prices a format as a per-format header (a
4-byte record count, plus a marker byte for tags 1-5), five pointer
slots per record, and the per-record branch-descriptor table:

    Scheme A: 8-byte pointers, branch units of 3 x 11-byte slots.
    Scheme B: 9-byte pointers, branch units of 4 x 2 x 3 8-byte fields.

The B/A ratio of the two projections quantifies the trade-off of
switching encodings for the observed node population.
*/
package packstat
