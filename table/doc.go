/*
Package table contains a custom SSTable implementation with arbitrary
byte-string keys, used as the native single-file store format.

Data Structure Documentation

Store

A store contains a series of data blocks followed by a block index and
a store footer.

    Store layout:
    +---------+---------+---------+-------------+--------------+
    | block 1 |   ...   | block n | block index | store footer |
    +---------+---------+---------+-------------+--------------+

    Block index:
    +--------------------------+------------------+--------------------+-------+
    | last key len 1 (varint)  |  last key 1      |  offset 1 (varint, |  ...  |
    |                          |  (varlen)        |  delta)            |       |
    +--------------------------+------------------+--------------------+-------+

    Store footer:
    +------------------------+------------------+
    | index offset (8 bytes) |  magic (8 bytes) |
    +------------------------+------------------+

Block

A block comprises of a series of sections, followed by a section
index and a single-byte compression type indicator.

    Block layout:
    +-----------+---------+-----------+---------------+---------------------------+
    | section 1 |   ...   | section n | section index | compression type (1-byte) |
    +-----------+---------+-----------+---------------+---------------------------+

    Section index:
    +----------------------------+-------+----------------------------+-------------------------------+
    | section offset 2 (4 bytes) |  ...  | section offset n (4 bytes) |  number of sections (4 bytes) |
    +----------------------------+-------+----------------------------+-------------------------------+

Section

A section is a series of key/value pairs where keys are prefix-compressed
against their predecessor. The first key of a section is always stored in
full (shared length 0).

    +------------------+--------------------+----------------------+--------------------+------------------+-------+
    | shared 1 (varint)| unshared 1 (varint)| value len 1 (varint) |  key 1 suffix      | value 1 (varlen) |  ...  |
    +------------------+--------------------+----------------------+--------------------+------------------+-------+
*/
package table
